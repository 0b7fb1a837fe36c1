package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
// Rank 0 is Black's back rank and rank 7 is White's, so the grid reads
// top-to-bottom from White's point of view.
const (
	BoardSize = 8

	FirstRank = 0
	LastRank  = BoardSize - 1
	FirstFile = 0
	LastFile  = BoardSize - 1

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate. Squares are not validated on construction:
// move generation builds off-board squares and rejects them with OnBoard.
type Square struct {
	Rank int
	File int
}

// NewSquare creates a square from a rank and file index.
func NewSquare(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// ParseSquare parses a two-character square such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: expected two characters: %w", s, errors.ErrInvalidNotation)
	}
	file := int(s[0]) - FileBase
	rank := LastRank - (int(s[1]) - RankBase)
	sq := Square{Rank: rank, File: file}
	if file < FirstFile || file > LastFile {
		return Square{}, fmt.Errorf("square %q: illegal file %c: %w", s, s[0], errors.ErrInvalidNotation)
	}
	if rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("square %q: illegal rank %c: %w", s, s[1], errors.ErrInvalidNotation)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// It is intended for constant squares in tables and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// OnBoard returns true if the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Rank >= FirstRank && s.Rank <= LastRank &&
		s.File >= FirstFile && s.File <= LastFile
}

// Offset returns the square displaced by the given rank and file deltas.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// IsWhite returns true for light squares.
func (s Square) IsWhite() bool {
	return (s.Rank+s.File)%2 == 0
}

// IsCorner returns true for a1, h1, a8 and h8.
func (s Square) IsCorner() bool {
	return s.IsTopLeft() || s.IsTopRight() || s.IsBottomLeft() || s.IsBottomRight()
}

// IsTopLeft returns true for a8, Black's queenside rook square.
func (s Square) IsTopLeft() bool {
	return s.Rank == FirstRank && s.File == FirstFile
}

// IsTopRight returns true for h8, Black's kingside rook square.
func (s Square) IsTopRight() bool {
	return s.Rank == FirstRank && s.File == LastFile
}

// IsBottomLeft returns true for a1, White's queenside rook square.
func (s Square) IsBottomLeft() bool {
	return s.Rank == LastRank && s.File == FirstFile
}

// IsBottomRight returns true for h1, White's kingside rook square.
func (s Square) IsBottomRight() bool {
	return s.Rank == LastRank && s.File == LastFile
}

// CornerRight returns the castling right guarded by a corner square,
// or NoCastling for any other square.
func (s Square) CornerRight() CastlingRights {
	switch {
	case s.IsTopLeft():
		return BlackQueenside
	case s.IsTopRight():
		return BlackKingside
	case s.IsBottomLeft():
		return WhiteQueenside
	case s.IsBottomRight():
		return WhiteKingside
	}
	return NoCastling
}

// FileLetter returns the file as a letter 'a'-'h'.
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File)
}

// RankDigit returns the rank as a digit '1'-'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + LastRank - s.Rank)
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}
