package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a board's history in JSON format.
type JSONGame struct {
	Name       string     `json:"name,omitempty"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	PlyCount   int        `json:"plyCount"`
	InCheck    bool       `json:"inCheck"`
	MoveList   string     `json:"moveList,omitempty"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts the history of b to JSON format.
func GameToJSON(b *engine.Board) (*JSONGame, error) {
	plies, err := Plies(b)
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		InitialFEN: startBoard(b).FEN(),
		FinalFEN:   b.FEN(),
		PlyCount:   len(plies),
		InCheck:    b.InCheck(b.ActiveColour()),
		MoveList:   strings.TrimSpace(MoveListString(b)),
		Moves:      make([]JSONMove, 0, len(plies)),
	}
	for _, p := range plies {
		jg.Moves = append(jg.Moves, convertPly(p))
	}
	return jg, nil
}

// convertPly converts a single ply to JSON format.
func convertPly(p Ply) JSONMove {
	jm := JSONMove{
		MoveNumber: p.Number,
		Color:      colorName(p.Colour),
		SAN:        p.Text,
		UCI:        p.Move.UCI(),
		From:       p.Move.From.String(),
		To:         p.Move.To.String(),
		Piece:      pieceTypeName(p.Move.Piece.Type),
		FEN:        p.FEN,
	}
	if p.Move.IsCapture() {
		jm.Captured = pieceTypeName(p.Move.Captured.Type)
	}
	if p.Move.Promotion != chess.NoPieceType {
		jm.Promotion = pieceTypeName(p.Move.Promotion)
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece type as a lower-case word.
func pieceTypeName(pt chess.PieceType) string {
	if pt == chess.NoPieceType {
		return ""
	}
	return strings.ToLower(pt.String())
}

// WriteJSON writes a single game as indented JSON.
func WriteJSON(w io.Writer, b *engine.Board) error {
	jg, err := GameToJSON(b)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}
