// Package chess provides the core chess value types shared by the rules
// engine and the notation codecs.
package chess

import "math"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the active-colour token used in position strings.
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// BackRank returns the rank index of the colour's own back rank.
func (c Colour) BackRank() int {
	if c == White {
		return LastRank
	}
	return FirstRank
}

// PawnDirection returns the rank delta of a pawn push: White advances
// toward rank 0, Black toward rank 7.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// PieceType represents a chess piece kind.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if pt >= 0 && int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the notation symbol of the piece type. Pawns have none.
func (pt PieceType) Letter() string {
	letters := []string{"", "", "N", "B", "R", "Q", "K"}
	if pt >= 0 && int(pt) < len(letters) {
		return letters[pt]
	}
	return ""
}

// Value returns the informational material value of the piece type.
// The king is priceless and reports math.MaxInt.
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return math.MaxInt
	}
	return 0
}

// IsPromotionTarget reports whether a pawn may promote to the piece type.
func (pt PieceType) IsPromotionTarget() bool {
	switch pt {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
// It returns NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	}
	return NoPieceType
}

// Piece is a coloured piece. The zero value is NoPiece.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(pt PieceType) Piece {
	return Piece{Type: pt, Colour: White}
}

// B creates a black piece.
func B(pt PieceType) Piece {
	return Piece{Type: pt, Colour: Black}
}

// IsEmpty returns true if the piece marks an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String returns a readable form such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// FENChar returns the position-string character of the piece:
// upper case for White, lower case for Black.
func (p Piece) FENChar() byte {
	chars := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p.Type < 0 || int(p.Type) >= len(chars) {
		return '?'
	}
	c := chars[p.Type]
	if p.Colour == Black && c != ' ' {
		c += 'a' - 'A'
	}
	return c
}

// PieceFromFENChar converts a position-string character to a piece.
func PieceFromFENChar(c byte) (Piece, bool) {
	pt := PieceTypeFromLetter(c)
	if pt == NoPieceType {
		return NoPiece, false
	}
	if c >= 'a' && c <= 'z' {
		return B(pt), true
	}
	return W(pt), true
}

// CastlingRights is a 4-bit set of the remaining castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// KingsideFor returns the kingside right of the colour.
func KingsideFor(c Colour) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideFor returns the queenside right of the colour.
func QueensideFor(c Colour) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether every bit of r is present.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// Without returns the set with the bits of r cleared.
func (cr CastlingRights) Without(r CastlingRights) CastlingRights {
	return cr &^ r
}

// String returns the rights in position-string form, "-" when empty.
func (cr CastlingRights) String() string {
	var b []byte
	if cr.Has(WhiteKingside) {
		b = append(b, 'K')
	}
	if cr.Has(WhiteQueenside) {
		b = append(b, 'Q')
	}
	if cr.Has(BlackKingside) {
		b = append(b, 'k')
	}
	if cr.Has(BlackQueenside) {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// ParseCastlingRights parses a castling token such as "KQkq" or "-".
// The second result is false if the token contains any other character.
func ParseCastlingRights(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	if s == "" {
		return NoCastling, false
	}
	var cr CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			cr |= WhiteKingside
		case 'Q':
			cr |= WhiteQueenside
		case 'k':
			cr |= BlackKingside
		case 'q':
			cr |= BlackQueenside
		default:
			return NoCastling, false
		}
	}
	return cr, true
}
