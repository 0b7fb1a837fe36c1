package engine

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	cerrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func mv(from, to string) chess.Move {
	return chess.NewMove(chess.MustParseSquare(from), chess.MustParseSquare(to))
}

func TestMakeMove_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move chess.Move
	}{
		{"source off board", InitialFEN, chess.NewMove(chess.NewSquare(8, 0), chess.MustParseSquare("a3"))},
		{"destination off board", InitialFEN, chess.NewMove(chess.MustParseSquare("a2"), chess.NewSquare(-1, 0))},
		{"empty source", InitialFEN, mv("e4", "e5")},
		{"wrong colour", InitialFEN, mv("e7", "e5")},
		{"bad shape", InitialFEN, mv("e2", "e5")},
		{"blocked", InitialFEN, mv("a1", "a3")},
		{"own piece", InitialFEN, mv("d1", "d2")},
		{"promotion without piece", "8/P3k3/8/8/8/8/8/4K3 w - - 0 1", mv("a7", "a8")},
		{"promotion to king", "8/P3k3/8/8/8/8/8/4K3 w - - 0 1", mv("a7", "a8").WithPromotion(chess.King)},
		{"promotion to pawn", "8/P3k3/8/8/8/8/8/4K3 w - - 0 1", mv("a7", "a8").WithPromotion(chess.Pawn)},
		{"promotion piece on ordinary move", InitialFEN, mv("e2", "e4").WithPromotion(chess.Queen)},
		{"exposes king", "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1", mv("e2", "c3")},
		{"castle through check", "4k3/8/8/8/8/8/8/R3K2r w Q - 0 1", mv("e1", "g1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			before := b.Copy()

			err := b.MakeMove(tt.move)
			if err == nil {
				t.Fatalf("MakeMove(%v) succeeded, want error", tt.move)
			}
			if !errors.Is(err, cerrors.ErrIllegalMove) {
				t.Errorf("MakeMove(%v) error = %v, want ErrIllegalMove", tt.move, err)
			}
			if !b.Equal(before) {
				t.Errorf("failed MakeMove changed the board:\n%s", b)
			}
		})
	}
}

func TestMakeMove_Basic(t *testing.T) {
	b := NewBoard()
	if err := b.MakeMove(mv("e2", "e4")); err != nil {
		t.Fatalf("MakeMove(e2e4) failed: %v", err)
	}
	if got := b.Piece(chess.MustParseSquare("e4")); got != chess.W(chess.Pawn) {
		t.Errorf("e4 = %v, want White Pawn", got)
	}
	if !b.Piece(chess.MustParseSquare("e2")).IsEmpty() {
		t.Error("e2 should be empty")
	}
	if b.ActiveColour() != chess.Black {
		t.Errorf("ActiveColour() = %v, want Black", b.ActiveColour())
	}
	last, ok := b.LastMove()
	if !ok || last.Piece != chess.W(chess.Pawn) || last.IsCapture() {
		t.Errorf("LastMove() = %+v, %v", last, ok)
	}
}

func TestMakeMove_Promotion(t *testing.T) {
	for _, pt := range []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
		t.Run(pt.String(), func(t *testing.T) {
			b := mustBoard(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
			if err := b.MakeMove(mv("a7", "b8").WithPromotion(pt)); err != nil {
				t.Fatalf("MakeMove(a7b8=%v) failed: %v", pt, err)
			}
			if got := b.Piece(chess.MustParseSquare("b8")); got != chess.W(pt) {
				t.Errorf("b8 = %v, want White %v", got, pt)
			}

			b.UndoMove()
			if got := b.Piece(chess.MustParseSquare("a7")); got != chess.W(chess.Pawn) {
				t.Errorf("after undo a7 = %v, want White Pawn", got)
			}
			if got := b.Piece(chess.MustParseSquare("b8")); got != chess.B(chess.Rook) {
				t.Errorf("after undo b8 = %v, want Black Rook", got)
			}
		})
	}
}

func TestMakeMove_BlackPromotion(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/p7/4K3 b - - 0 1")
	if err := b.MakeMove(mv("a2", "a1").WithPromotion(chess.Knight)); err != nil {
		t.Fatalf("MakeMove(a2a1=N) failed: %v", err)
	}
	if got := b.Piece(chess.MustParseSquare("a1")); got != chess.B(chess.Knight) {
		t.Errorf("a1 = %v, want Black Knight", got)
	}
}

func TestMakeMove_Castling(t *testing.T) {
	tests := []struct {
		name             string
		fen              string
		move             chess.Move
		rookFrom, rookTo string
		wantRights       chess.CastlingRights
	}{
		{"white kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mv("e1", "g1"), "h1", "f1", chess.BlackKingside | chess.BlackQueenside},
		{"white queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mv("e1", "c1"), "a1", "d1", chess.BlackKingside | chess.BlackQueenside},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mv("e8", "g8"), "h8", "f8", chess.WhiteKingside | chess.WhiteQueenside},
		{"black queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mv("e8", "c8"), "a8", "d8", chess.WhiteKingside | chess.WhiteQueenside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			before := b.Copy()
			if err := b.MakeMove(tt.move); err != nil {
				t.Fatalf("MakeMove(%v) failed: %v", tt.move, err)
			}
			if got := b.Piece(chess.MustParseSquare(tt.rookTo)); got.Type != chess.Rook {
				t.Errorf("%s = %v, want rook", tt.rookTo, got)
			}
			if !b.Piece(chess.MustParseSquare(tt.rookFrom)).IsEmpty() {
				t.Errorf("%s should be empty after castling", tt.rookFrom)
			}
			if b.CastlingRights() != tt.wantRights {
				t.Errorf("CastlingRights() = %v, want %v", b.CastlingRights(), tt.wantRights)
			}

			b.UndoMove()
			if !b.Equal(before) {
				t.Errorf("undo of castling did not restore the board:\n%s", b)
			}
		})
	}
}

func TestCastling_Gating(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{"both wings", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1", "e1g1"}},
		{"no rights", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", nil},
		{"kingside right only", "4k3/8/8/8/8/8/8/R3K2R w K - 0 1", []string{"e1g1"}},
		{"path blocked", "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1", nil},
		{"b-file blocked only", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", []string{"e1g1"}},
		{"in check", "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1", nil},
		{"transit attacked", "4k3/5r2/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1"}},
		{"destination attacked", "4k3/2r5/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1g1"}},
		{"b1 attacked is allowed", "4k3/1r6/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1", "e1g1"}},
		{"rook missing", "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1", []string{"e1g1"}},
		{"black both wings", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", []string{"e8c8", "e8g8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			king := chess.MustParseSquare("e1")
			if b.ActiveColour() == chess.Black {
				king = chess.MustParseSquare("e8")
			}
			var got []string
			for _, m := range b.LegalMoves(king) {
				if m.IsCastle() {
					got = append(got, m.From.String()+m.To.String())
				}
			}
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("castling moves = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("castling moves = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCastlingRights_Updates(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []chess.Move
		want  chess.CastlingRights
	}{
		{"king move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []chess.Move{mv("e1", "e2")}, chess.BlackKingside | chess.BlackQueenside},
		{"h1 rook move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []chess.Move{mv("h1", "h2")}, chess.WhiteQueenside | chess.BlackKingside | chess.BlackQueenside},
		{"a8 rook captured", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []chess.Move{mv("a1", "a8")}, chess.WhiteKingside | chess.BlackKingside},
		{"rook returns", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []chess.Move{mv("a1", "a2"), mv("h8", "h7"), mv("a2", "a1")}, chess.WhiteKingside | chess.BlackQueenside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			for _, m := range tt.moves {
				if err := b.MakeMove(m); err != nil {
					t.Fatalf("MakeMove(%v) failed: %v", m, err)
				}
			}
			if got := b.CastlingRights(); got != tt.want {
				t.Errorf("CastlingRights() = %v, want %v", got, tt.want)
			}
			for range tt.moves {
				b.UndoMove()
			}
			if got := b.CastlingRights(); got != chess.AllCastling {
				t.Errorf("after undo CastlingRights() = %v, want KQkq", got)
			}
		})
	}
}

func TestUndoMove_EmptyHistory(t *testing.T) {
	b := NewBoard()
	before := b.Copy()
	b.UndoMove()
	if !b.Equal(before) {
		t.Error("UndoMove() on empty history changed the board")
	}
	if n := b.UndoMoves(3); n != 0 {
		t.Errorf("UndoMoves(3) = %d, want 0", n)
	}
}

func TestMakeUndo_RoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBoard()
		start := b.Copy()

		plies := 0
		for ; plies < 80; plies++ {
			moves := b.GenerateMoves()
			if len(moves) == 0 {
				break
			}
			m := moves[rng.Intn(len(moves))]
			if m.IsPromotion() {
				m.Promotion = chess.Queen
			}
			if err := b.MakeMove(m); err != nil {
				t.Fatalf("seed %d: generated move %v rejected: %v", seed, m, err)
			}
		}

		if got := b.UndoMoves(plies); got != plies {
			t.Fatalf("seed %d: UndoMoves(%d) = %d", seed, plies, got)
		}
		if !b.Equal(start) {
			t.Errorf("seed %d: %d moves and %d undos did not restore the start:\n%s", seed, plies, plies, b)
		}
	}
}
