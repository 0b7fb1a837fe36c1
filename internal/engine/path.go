package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// direction is a (rank, file) displacement.
type direction [2]int

var (
	orthogonals = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonals   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirs     = append(append([]direction{}, orthogonals...), diagonals...)

	knightJumps = []direction{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

// stepTargets returns the squares one displacement away from from that are
// on the board and not held by a piece of the given colour.
func (b *Board) stepTargets(from chess.Square, colour chess.Colour, dirs []direction) []chess.Square {
	var targets []chess.Square
	for _, d := range dirs {
		to := from.Offset(d[0], d[1])
		if !to.OnBoard() {
			continue
		}
		if p := b.Piece(to); !p.IsEmpty() && p.Colour == colour {
			continue
		}
		targets = append(targets, to)
	}
	return targets
}

// rayTargets walks each direction from from until the board edge or the
// first occupied square. A square held by an enemy piece is included, one
// held by a friendly piece is not.
func (b *Board) rayTargets(from chess.Square, colour chess.Colour, dirs []direction) []chess.Square {
	var targets []chess.Square
	for _, d := range dirs {
		for to := from.Offset(d[0], d[1]); to.OnBoard(); to = to.Offset(d[0], d[1]) {
			p := b.Piece(to)
			if p.IsEmpty() {
				targets = append(targets, to)
				continue
			}
			if p.Colour != colour {
				targets = append(targets, to)
			}
			break // Blocked
		}
	}
	return targets
}

// isPathClear reports whether every square strictly between from and to on
// the same rank is empty.
func (b *Board) isPathClear(from, to chess.Square) bool {
	step := sign(to.File - from.File)
	for file := from.File + step; file != to.File; file += step {
		if !b.squares[from.Rank][file].IsEmpty() {
			return false
		}
	}
	return true
}
