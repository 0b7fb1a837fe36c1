package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// kingFile is the file a king must stand on to castle.
const kingFile = 4

// castleSide describes one wing: where the king lands and where the rook
// comes from and goes to.
type castleSide struct {
	kingTo   int
	rookFrom int
	rookTo   int
	right    func(chess.Colour) chess.CastlingRights
}

var castleSides = []castleSide{
	{kingTo: 6, rookFrom: chess.LastFile, rookTo: 5, right: chess.KingsideFor},
	{kingTo: 2, rookFrom: chess.FirstFile, rookTo: 3, right: chess.QueensideFor},
}

// castlingMoves returns the castling moves open to the king on from. A wing
// is available when its right is held, its rook is in the corner, the
// squares between king and rook are empty, and the king's origin, transit
// and destination squares are not attacked.
func (b *Board) castlingMoves(from chess.Square, colour chess.Colour) []chess.Move {
	if from.Rank != colour.BackRank() || from.File != kingFile {
		return nil
	}

	enemy := colour.Opposite()
	var moves []chess.Move
	for _, side := range castleSides {
		if !b.rights.Has(side.right(colour)) {
			continue
		}
		rookSq := chess.NewSquare(from.Rank, side.rookFrom)
		if b.Piece(rookSq) != (chess.Piece{Type: chess.Rook, Colour: colour}) {
			continue
		}
		if !b.isPathClear(from, rookSq) {
			continue
		}

		to := chess.NewSquare(from.Rank, side.kingTo)
		transit := chess.NewSquare(from.Rank, (from.File+side.kingTo)/2)
		if b.IsSquareAttacked(from, enemy) ||
			b.IsSquareAttacked(transit, enemy) ||
			b.IsSquareAttacked(to, enemy) {
			continue
		}
		moves = append(moves, b.stampedMove(from, to))
	}
	return moves
}

// castleRookSquares returns the rook's origin and destination for a
// castling move.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	side := castleSides[0]
	if m.IsQueensideCastle() {
		side = castleSides[1]
	}
	return chess.NewSquare(m.From.Rank, side.rookFrom), chess.NewSquare(m.From.Rank, side.rookTo)
}

// rightsAfter returns the castling rights left once m has been played. A
// king move clears both of its side's rights; a move from or onto a corner
// clears the right guarded by that corner.
func rightsAfter(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	if m.Piece.Type == chess.King {
		c := m.Piece.Colour
		rights = rights.Without(chess.KingsideFor(c) | chess.QueensideFor(c))
	}
	return rights.Without(m.From.CornerRight() | m.To.CornerRight())
}
