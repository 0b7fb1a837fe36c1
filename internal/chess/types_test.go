package chess

import (
	"errors"
	"math"
	"testing"

	cerrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestColourOpposite(t *testing.T) {
	for _, c := range []Colour{White, Black} {
		if c.Opposite() == c {
			t.Errorf("%v.Opposite() = %v; want the other colour", c, c.Opposite())
		}
		if c.Opposite().Opposite() != c {
			t.Errorf("%v.Opposite().Opposite() = %v; want %v", c, c.Opposite().Opposite(), c)
		}
	}
	if White.PawnDirection() != -1 || Black.PawnDirection() != 1 {
		t.Error("White pawns should advance toward rank 0, Black toward rank 7")
	}
	if White.BackRank() != 7 || Black.BackRank() != 0 {
		t.Errorf("BackRank() = %d/%d; want 7/0", White.BackRank(), Black.BackRank())
	}
}

func TestPieceTypeValueAndLetter(t *testing.T) {
	tests := []struct {
		pt     PieceType
		value  int
		letter string
	}{
		{Pawn, 1, ""},
		{Knight, 3, "N"},
		{Bishop, 3, "B"},
		{Rook, 5, "R"},
		{Queen, 9, "Q"},
		{King, math.MaxInt, "K"},
	}
	for _, tt := range tests {
		t.Run(tt.pt.String(), func(t *testing.T) {
			if got := tt.pt.Value(); got != tt.value {
				t.Errorf("Value() = %d; want %d", got, tt.value)
			}
			if got := tt.pt.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q; want %q", got, tt.letter)
			}
		})
	}
}

func TestPieceFENChar(t *testing.T) {
	tests := []struct {
		c     byte
		piece Piece
	}{
		{'K', W(King)},
		{'q', B(Queen)},
		{'R', W(Rook)},
		{'b', B(Bishop)},
		{'N', W(Knight)},
		{'p', B(Pawn)},
	}
	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			got, ok := PieceFromFENChar(tt.c)
			if !ok || got != tt.piece {
				t.Errorf("PieceFromFENChar(%c) = %v, %v; want %v", tt.c, got, ok, tt.piece)
			}
			if back := tt.piece.FENChar(); back != tt.c {
				t.Errorf("%v.FENChar() = %c; want %c", tt.piece, back, tt.c)
			}
		})
	}

	if _, ok := PieceFromFENChar('x'); ok {
		t.Error("PieceFromFENChar('x') should fail")
	}
	if !NoPiece.IsEmpty() {
		t.Error("NoPiece.IsEmpty() = false; want true")
	}
}

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		in   string
		want CastlingRights
		ok   bool
	}{
		{"KQkq", AllCastling, true},
		{"-", NoCastling, true},
		{"Kq", WhiteKingside | BlackQueenside, true},
		{"k", BlackKingside, true},
		{"", NoCastling, false},
		{"KX", NoCastling, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCastlingRights(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseCastlingRights(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
			if ok && tt.in != "" && got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}

	cr := AllCastling.Without(KingsideFor(White))
	if cr.Has(WhiteKingside) || !cr.Has(QueensideFor(White)) {
		t.Errorf("Without(WhiteKingside) = %v; want Qkq", cr)
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a8", Square{0, 0}, false},
		{"h8", Square{0, 7}, false},
		{"a1", Square{7, 0}, false},
		{"e4", Square{4, 4}, false},
		{"h1", Square{7, 7}, false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, cerrors.ErrInvalidNotation) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidNotation", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestSquarePredicates(t *testing.T) {
	corners := map[string]CastlingRights{
		"a8": BlackQueenside,
		"h8": BlackKingside,
		"a1": WhiteQueenside,
		"h1": WhiteKingside,
	}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sq := NewSquare(rank, file)
			want, isCorner := corners[sq.String()]
			if sq.IsCorner() != isCorner {
				t.Errorf("%v.IsCorner() = %v; want %v", sq, sq.IsCorner(), isCorner)
			}
			if sq.CornerRight() != want {
				t.Errorf("%v.CornerRight() = %v; want %v", sq, sq.CornerRight(), want)
			}
		}
	}

	if !MustParseSquare("a8").IsWhite() || !MustParseSquare("h1").IsWhite() {
		t.Error("a8 and h1 should be light squares")
	}
	if MustParseSquare("a1").IsWhite() {
		t.Error("a1 should be a dark square")
	}
	if NewSquare(-1, 3).OnBoard() || NewSquare(3, 8).OnBoard() {
		t.Error("OnBoard() accepted an off-board square")
	}
}

func TestMovePredicates(t *testing.T) {
	e1, g1, c1 := MustParseSquare("e1"), MustParseSquare("g1"), MustParseSquare("c1")

	castle := Move{From: e1, To: g1, Piece: W(King)}
	if !castle.IsKingsideCastle() || castle.IsQueensideCastle() || !castle.IsCastle() {
		t.Errorf("%v should be a kingside castle", castle)
	}
	long := Move{From: e1, To: c1, Piece: W(King)}
	if !long.IsQueensideCastle() {
		t.Errorf("%v should be a queenside castle", long)
	}
	rookSlide := Move{From: e1, To: g1, Piece: W(Rook)}
	if rookSlide.IsCastle() {
		t.Errorf("rook move %v should not be a castle", rookSlide)
	}

	promo := Move{From: MustParseSquare("b7"), To: MustParseSquare("b8"), Piece: W(Pawn)}
	if !promo.IsPromotion() {
		t.Errorf("%v should be a promotion", promo)
	}
	blackPromo := Move{From: MustParseSquare("b2"), To: MustParseSquare("b1"), Piece: B(Pawn)}
	if !blackPromo.IsPromotion() {
		t.Errorf("%v should be a promotion", blackPromo)
	}
	if (Move{From: MustParseSquare("b2"), To: MustParseSquare("b1"), Piece: W(Pawn)}).IsPromotion() {
		t.Error("a white pawn moving backwards is not a promotion")
	}

	if got := promo.WithPromotion(Knight).UCI(); got != "b7b8n" {
		t.Errorf("UCI() = %q; want %q", got, "b7b8n")
	}
	if !promo.Equal(promo.WithPromotion(Rook)) {
		t.Error("Equal() should ignore the promotion choice")
	}
}
