package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// targets returns the pseudo-legal destination squares of piece p standing
// on from. Castling is not included.
func (b *Board) targets(from chess.Square, p chess.Piece) []chess.Square {
	switch p.Type {
	case chess.Pawn:
		return b.pawnTargets(from, p.Colour)
	case chess.Knight:
		return b.stepTargets(from, p.Colour, knightJumps)
	case chess.Bishop:
		return b.rayTargets(from, p.Colour, diagonals)
	case chess.Rook:
		return b.rayTargets(from, p.Colour, orthogonals)
	case chess.Queen:
		return b.rayTargets(from, p.Colour, allDirs)
	case chess.King:
		return b.stepTargets(from, p.Colour, allDirs)
	}
	return nil
}

// pseudoLegalMoves returns the moves of the piece on from that obey its
// movement and occupancy rules, castling included, without checking
// whether they leave the mover's king attacked.
func (b *Board) pseudoLegalMoves(from chess.Square) []chess.Move {
	p := b.Piece(from)
	if p.IsEmpty() {
		return nil
	}

	var moves []chess.Move
	for _, to := range b.targets(from, p) {
		moves = append(moves, b.stampedMove(from, to))
	}
	if p.Type == chess.King {
		moves = append(moves, b.castlingMoves(from, p.Colour)...)
	}
	return moves
}

// PieceMoves returns the pseudo-legal moves of the piece on sq. The result
// is empty when sq is off the board, empty, or holds a piece that is not
// the side to move.
func (b *Board) PieceMoves(sq chess.Square) []chess.Move {
	if !sq.OnBoard() {
		return nil
	}
	if p := b.Piece(sq); p.IsEmpty() || p.Colour != b.active {
		return nil
	}
	return b.pseudoLegalMoves(sq)
}

// stampedMove builds a move carrying the moving and captured pieces.
func (b *Board) stampedMove(from, to chess.Square) chess.Move {
	return chess.Move{
		From:     from,
		To:       to,
		Piece:    b.Piece(from),
		Captured: b.Piece(to),
	}
}
