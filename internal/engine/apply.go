package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MakeMove validates m for the side to move and applies it. Only From, To
// and Promotion are read from m; the moving and captured pieces are taken
// from the board. Any failure wraps ErrIllegalMove and leaves the board
// unchanged.
func (b *Board) MakeMove(m chess.Move) error {
	if !m.From.OnBoard() {
		return errors.Illegal(fmt.Sprintf("source square %v is off the board", m.From))
	}
	if !m.To.OnBoard() {
		return errors.Illegal(fmt.Sprintf("destination square %v is off the board", m.To))
	}

	p := b.Piece(m.From)
	if p.IsEmpty() {
		return errors.Illegal(fmt.Sprintf("no piece on %v", m.From))
	}
	if !b.CanMakeMove(m) {
		if p.Colour != b.active {
			return errors.Illegal(fmt.Sprintf("%v cannot move: %v to play", p, b.active))
		}
		return errors.Illegal(fmt.Sprintf("%v cannot move from %v to %v", p, m.From, m.To))
	}

	move := b.stampedMove(m.From, m.To)
	move.Promotion = m.Promotion
	if move.IsPromotion() {
		if m.Promotion == chess.NoPieceType {
			return errors.Illegal(fmt.Sprintf("%v requires a promotion piece", move))
		}
		if !m.Promotion.IsPromotionTarget() {
			return errors.Illegal(fmt.Sprintf("cannot promote to %v", m.Promotion))
		}
	} else if m.Promotion != chess.NoPieceType {
		return errors.Illegal(fmt.Sprintf("%v is not a promotion", move))
	}

	if !b.isLegal(move) {
		return errors.Illegal(fmt.Sprintf("%v leaves the %v king in check", move, p.Colour))
	}

	b.apply(move)
	return nil
}

// apply plays a stamped move without validation and records it.
func (b *Board) apply(m chess.Move) {
	prev := b.rights

	// Move the piece, replacing a promoting pawn with a new piece
	b.set(m.From, chess.NoPiece)
	placed := m.Piece
	if m.Promotion != chess.NoPieceType {
		placed = chess.Piece{Type: m.Promotion, Colour: m.Piece.Colour}
	}
	b.set(m.To, placed)

	// Move the rook
	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		b.set(rookTo, b.Piece(rookFrom))
		b.set(rookFrom, chess.NoPiece)
	}

	b.rights = rightsAfter(b.rights, m)
	b.active = b.active.Opposite()
	b.history = append(b.history, appliedMove{move: m, prevRights: prev})
}

// UndoMove takes back the last applied move. It does nothing when the
// history is empty.
func (b *Board) UndoMove() {
	if len(b.history) == 0 {
		return
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	m := rec.move

	b.set(m.To, m.Captured)
	b.set(m.From, m.Piece)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		b.set(rookFrom, b.Piece(rookTo))
		b.set(rookTo, chess.NoPiece)
	}

	b.rights = rec.prevRights
	b.active = b.active.Opposite()
}

// UndoMoves takes back up to n moves and returns how many were undone.
func (b *Board) UndoMoves(n int) int {
	undone := 0
	for ; undone < n && len(b.history) > 0; undone++ {
		b.UndoMove()
	}
	return undone
}
