package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GenerateMoves returns the legal moves of the side to move. Origins are
// visited in row-major order from a8; each piece contributes its moves in
// its own generation order. Promotions appear once, with no promotion
// piece chosen.
func (b *Board) GenerateMoves() []chess.Move {
	var moves []chess.Move
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			moves = append(moves, b.LegalMoves(chess.NewSquare(rank, file))...)
		}
	}
	return moves
}

// LegalMoves returns the legal moves of the piece on sq, or nil when sq
// does not hold a piece of the side to move.
func (b *Board) LegalMoves(sq chess.Square) []chess.Move {
	var moves []chess.Move
	for _, m := range b.PieceMoves(sq) {
		if b.isLegal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			for _, m := range b.PieceMoves(chess.NewSquare(rank, file)) {
				if b.isLegal(m) {
					return true
				}
			}
		}
	}
	return false
}

// isLegal reports whether m leaves the mover's own king unattacked.
func (b *Board) isLegal(m chess.Move) bool {
	mover := m.Piece.Colour
	return b.simulate(m, func() bool {
		return !b.InCheck(mover)
	})
}

// simulate applies m without validation, runs inspect on the resulting
// position and always undoes m before returning inspect's answer.
// Simulations do not nest.
func (b *Board) simulate(m chess.Move, inspect func() bool) bool {
	if b.simulating {
		panic("engine: nested move simulation")
	}
	b.simulating = true
	defer func() { b.simulating = false }()

	b.apply(m)
	defer b.UndoMove()

	return inspect()
}
