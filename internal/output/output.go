// Package output renders a board's move history as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Ply is one recorded move together with the context needed to print it.
type Ply struct {
	Move   chess.Move
	Text   string // algebraic token, e.g. "Nbd2" or "exd5"
	Number int    // full move number the ply belongs to
	Colour chess.Colour
	FEN    string // position after the move
}

// startBoard returns a copy of b rewound to the start of its history.
func startBoard(b *engine.Board) *engine.Board {
	start := b.Copy()
	start.UndoMoves(start.MoveCount())
	return start
}

// Plies replays the history of b from its starting position and returns
// one record per move. The board itself is not modified.
func Plies(b *engine.Board) ([]Ply, error) {
	replay := startBoard(b)
	history := b.Moves()
	plies := make([]Ply, 0, len(history))

	for _, m := range history {
		ply := Ply{
			Move:   m,
			Text:   MoveText(m, replay.GenerateMoves()),
			Number: replay.FullMoveNumber(),
			Colour: replay.ActiveColour(),
		}
		if err := replay.MakeMove(m); err != nil {
			return nil, fmt.Errorf("replaying %s: %w", m.UCI(), err)
		}
		ply.FEN = replay.FEN()
		plies = append(plies, ply)
	}
	return plies, nil
}

// MoveText returns the algebraic token for m. siblings are the legal
// moves of the position m is played from; they decide how much of the
// origin square the token must name.
func MoveText(m chess.Move, siblings []chess.Move) string {
	switch {
	case m.IsKingsideCastle():
		return "O-O"
	case m.IsQueensideCastle():
		return "O-O-O"
	}

	var sb strings.Builder
	if m.Piece.Type == chess.Pawn {
		if m.IsCapture() {
			sb.WriteByte(m.From.FileLetter())
		}
	} else {
		sb.WriteString(m.Piece.Type.Letter())
		sb.WriteString(disambiguation(m, siblings))
	}

	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	if m.Promotion != chess.NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}
	return sb.String()
}

// disambiguation returns the part of the origin square needed to tell m
// apart from other pieces of the same kind reaching the same square.
func disambiguation(m chess.Move, siblings []chess.Move) string {
	rivals, sameFile, sameRank := false, false, false
	for _, s := range siblings {
		if s.From == m.From || s.To != m.To || s.Piece != m.Piece {
			continue
		}
		rivals = true
		if s.From.File == m.From.File {
			sameFile = true
		}
		if s.From.Rank == m.From.Rank {
			sameRank = true
		}
	}

	switch {
	case !rivals:
		return ""
	case !sameFile:
		return string(m.From.FileLetter())
	case !sameRank:
		return string(m.From.RankDigit())
	}
	return m.From.String()
}

// WriteMoveList writes the history of b as numbered move pairs, one full
// move per line: "1. e4 e5\n2. Nf3 Nc6\n". A history that opens with
// Black's move starts with "N... ".
func WriteMoveList(w io.Writer, b *engine.Board) error {
	plies, err := Plies(b)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for i, p := range plies {
		switch {
		case p.Colour == chess.White:
			fmt.Fprintf(&sb, "%d. %s ", p.Number, p.Text)
		case i == 0:
			fmt.Fprintf(&sb, "%d... %s\n", p.Number, p.Text)
		default:
			sb.WriteString(p.Text)
			sb.WriteByte('\n')
		}
	}

	_, err = io.WriteString(w, sb.String())
	return err
}

// MoveListString returns the output of WriteMoveList as a string.
func MoveListString(b *engine.Board) string {
	var sb strings.Builder
	if err := WriteMoveList(&sb, b); err != nil {
		return ""
	}
	return sb.String()
}
