package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CastleSide identifies a castling token.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// Decoded is a move token broken into its parts. FromFile and FromRank are
// -1 when the token does not disambiguate by them.
type Decoded struct {
	Text      string
	Castle    CastleSide
	Piece     chess.PieceType
	FromFile  int
	FromRank  int
	To        chess.Square
	Capture   bool
	Promotion chess.PieceType
}

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isPiece returns the piece type of an upper-case piece letter, or
// NoPieceType. Pawns are never lettered.
func isPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.PieceTypeFromLetter(c)
	}
	return chess.NoPieceType
}

// isCapture returns true if c is a capture character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X'
}

// isSuffix returns true for check, mate and annotation glyphs.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

func badMove(text, reason string) error {
	return fmt.Errorf("move %q: %s: %w", text, reason, errors.ErrInvalidNotation)
}

// DecodeMove parses a move token of the form
// [piece][file][rank][x]<destination>[=promotion] with optional trailing
// check and annotation glyphs, or a castling token O-O / O-O-O (zeros
// accepted).
func DecodeMove(text string) (Decoded, error) {
	d := Decoded{Text: text, FromFile: -1, FromRank: -1}

	move := strings.TrimRightFunc(text, func(r rune) bool {
		return r < 128 && isSuffix(byte(r))
	})
	if move == "" {
		return d, badMove(text, "empty move")
	}

	switch strings.ReplaceAll(move, "0", "O") {
	case "O-O":
		d.Castle, d.Piece = Kingside, chess.King
		return d, nil
	case "O-O-O":
		d.Castle, d.Piece = Queenside, chess.King
		return d, nil
	}

	pos := 0
	d.Piece = chess.Pawn
	if pt := isPiece(move[0]); pt != chess.NoPieceType {
		d.Piece = pt
		pos++
	}

	// Promotion suffix
	end := len(move)
	if end-pos >= 4 && move[end-2] == '=' {
		pt := isPiece(move[end-1])
		if !pt.IsPromotionTarget() {
			return d, badMove(text, "invalid promotion piece")
		}
		d.Promotion = pt
		end -= 2
	}

	// Destination square
	if end-pos < 2 || !isCol(move[end-2]) || !isRank(move[end-1]) {
		return d, badMove(text, "missing destination square")
	}
	to, err := chess.ParseSquare(move[end-2 : end])
	if err != nil {
		return d, badMove(text, "missing destination square")
	}
	d.To = to
	end -= 2

	// Capture marker
	if end > pos && isCapture(move[end-1]) {
		d.Capture = true
		end--
	}

	// Disambiguation
	if pos < end && isCol(move[pos]) {
		d.FromFile = int(move[pos] - 'a')
		pos++
	}
	if pos < end && isRank(move[pos]) {
		d.FromRank = chess.LastRank - int(move[pos]-'1')
		pos++
	}
	if pos != end {
		return d, badMove(text, "unexpected characters")
	}

	if d.Promotion != chess.NoPieceType && d.Piece != chess.Pawn {
		return d, badMove(text, "only pawns promote")
	}
	return d, nil
}

// Matches reports whether a legal move fits the decoded token.
func (d Decoded) Matches(m chess.Move) bool {
	switch d.Castle {
	case Kingside:
		return m.IsKingsideCastle()
	case Queenside:
		return m.IsQueensideCastle()
	}
	if m.IsCastle() || m.Piece.Type != d.Piece || m.To != d.To {
		return false
	}
	if d.FromFile >= 0 && m.From.File != d.FromFile {
		return false
	}
	// A pawn token without an origin file is a push
	if d.Piece == chess.Pawn && d.FromFile < 0 && m.From.File != m.To.File {
		return false
	}
	if d.FromRank >= 0 && m.From.Rank != d.FromRank {
		return false
	}
	return true
}
