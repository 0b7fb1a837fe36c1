package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// MustLoadPosition returns a board at fen. It calls t.Fatal if the
// position string is rejected.
func MustLoadPosition(t testing.TB, fen string) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

// MustPlay plays a move list from the board's current position. It calls
// t.Fatal if the list is rejected.
func MustPlay(t testing.TB, b *engine.Board, moves string) *engine.Board {
	t.Helper()
	if err := parser.ApplyMoveList(b, moves); err != nil {
		t.Fatalf("ApplyMoveList(%q): %v", moves, err)
	}
	return b
}

// MustGame returns a board that has played moves from the initial
// position.
func MustGame(t testing.TB, moves string) *engine.Board {
	t.Helper()
	return MustPlay(t, engine.NewBoard(), moves)
}

// UCIs returns the board's history in coordinate form, or nil when empty.
func UCIs(b *engine.Board) []string {
	var out []string
	for _, m := range b.Moves() {
		out = append(out, m.UCI())
	}
	return out
}
