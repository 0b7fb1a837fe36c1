package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnStartRank returns the rank a colour's pawns start on.
func pawnStartRank(c chess.Colour) int {
	if c == chess.White {
		return chess.LastRank - 1
	}
	return chess.FirstRank + 1
}

// pawnTargets returns the pseudo-legal destinations of a pawn: the single
// push, the double push from the start rank, and diagonal captures.
func (b *Board) pawnTargets(from chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	dir := colour.PawnDirection()

	one := from.Offset(dir, 0)
	if one.OnBoard() && b.Piece(one).IsEmpty() {
		targets = append(targets, one)

		// Double push
		if from.Rank == pawnStartRank(colour) {
			two := from.Offset(2*dir, 0)
			if two.OnBoard() && b.Piece(two).IsEmpty() {
				targets = append(targets, two)
			}
		}
	}

	for _, to := range pawnAttacks(from, colour) {
		if p := b.Piece(to); !p.IsEmpty() && p.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// pawnAttacks returns the on-board diagonal squares a pawn attacks,
// whatever stands on them. Pushes never attack.
func pawnAttacks(from chess.Square, colour chess.Colour) []chess.Square {
	var squares []chess.Square
	dir := colour.PawnDirection()
	for _, df := range []int{-1, 1} {
		if to := from.Offset(dir, df); to.OnBoard() {
			squares = append(squares, to)
		}
	}
	return squares
}
