package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the position string of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// position is a fully parsed position string.
type position struct {
	squares  [chess.BoardSize][chess.BoardSize]chess.Piece
	active   chess.Colour
	rights   chess.CastlingRights
	fullmove int
}

// LoadPosition replaces the board's state with the position described by
// text and clears the history.
//
// Fields are placement and active colour, optionally followed by castling
// rights, en passant square, halfmove clock and fullmove number. The en
// passant square and halfmove clock are validated but otherwise unused.
// The whole string is parsed before the board is touched, so a failure
// leaves it unchanged. Errors are *errors.ParseError wrapping
// ErrInvalidPosition.
func LoadPosition(b *Board, text string) error {
	pos, err := parsePosition(text)
	if err != nil {
		return err
	}
	b.clear()
	b.squares = pos.squares
	b.active = pos.active
	b.rights = pos.rights
	b.fullmove = pos.fullmove
	return nil
}

// NewBoardFromFEN creates a board from a position string.
func NewBoardFromFEN(text string) (*Board, error) {
	b := &Board{}
	if err := LoadPosition(b, text); err != nil {
		return nil, err
	}
	return b, nil
}

func invalidField(field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidPosition,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePosition parses every field of a position string.
func parsePosition(text string) (position, error) {
	pos := position{rights: chess.NoCastling, fullmove: 1}

	parts := strings.Fields(text)
	if len(parts) < 2 {
		return pos, invalidField("position", "at least placement and active colour", text)
	}
	if len(parts) > 6 {
		return pos, invalidField("position", "at most six fields", parts[6])
	}

	if err := parsePlacement(&pos, parts[0]); err != nil {
		return pos, err
	}

	switch parts[1] {
	case "w":
		pos.active = chess.White
	case "b":
		pos.active = chess.Black
	default:
		return pos, invalidField("active colour", "w or b", parts[1])
	}

	if len(parts) > 2 {
		rights, ok := chess.ParseCastlingRights(parts[2])
		if !ok {
			return pos, invalidField("castling", "- or a subset of KQkq", parts[2])
		}
		pos.rights = rights
	}

	if len(parts) > 3 && parts[3] != "-" {
		if _, err := chess.ParseSquare(parts[3]); err != nil {
			return pos, invalidField("en passant", "- or a square", parts[3])
		}
	}

	if len(parts) > 4 {
		if n, err := strconv.Atoi(parts[4]); err != nil || n < 0 {
			return pos, invalidField("halfmove clock", "a non-negative integer", parts[4])
		}
	}

	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return pos, invalidField("fullmove number", "a positive integer", parts[5])
		}
		pos.fullmove = n
	}

	return pos, nil
}

// parsePlacement parses the rank-by-rank piece placement, rank 8 first.
func parsePlacement(pos *position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return invalidField("placement", "8 ranks", placement)
	}

	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return invalidField("placement", "8 squares per rank", row)
				}
				continue
			}
			p, ok := chess.PieceFromFENChar(c)
			if !ok {
				return invalidField("placement", "a piece letter or digit", string(c))
			}
			if file >= chess.BoardSize {
				return invalidField("placement", "8 squares per rank", row)
			}
			pos.squares[rank][file] = p
			file++
		}
		if file != chess.BoardSize {
			return invalidField("placement", "8 squares per rank", row)
		}
	}
	return nil
}

// FEN returns the position string of the current position. The en passant
// field is always "-" and the halfmove clock always 0.
func (b *Board) FEN() string {
	var sb strings.Builder

	writePlacement(&sb, b)
	sb.WriteByte(' ')
	sb.WriteByte(b.active.FENLetter())
	sb.WriteByte(' ')
	sb.WriteString(b.rights.String())
	sb.WriteString(" - 0 ")
	sb.WriteString(strconv.Itoa(b.FullMoveNumber()))

	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, b *Board) {
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		emptyCount := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p := b.squares[rank][file]
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.LastRank {
			sb.WriteByte('/')
		}
	}
}
