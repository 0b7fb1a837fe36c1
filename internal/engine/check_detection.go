package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func (b *Board) InCheck(c chess.Colour) bool {
	king, ok := b.findKing(c)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, c.Opposite())
}

// IsAttacking reports whether the piece on from attacks target: target is
// one of its pseudo-legal destinations, or a diagonal in front of it for a
// pawn. Castling never attacks. The side to move is not consulted.
func (b *Board) IsAttacking(from, target chess.Square) bool {
	if !from.OnBoard() || !target.OnBoard() {
		return false
	}
	p := b.Piece(from)
	if p.IsEmpty() {
		return false
	}

	var squares []chess.Square
	if p.Type == chess.Pawn {
		squares = pawnAttacks(from, p.Colour)
	} else {
		squares = b.targets(from, p)
	}
	for _, sq := range squares {
		if sq == target {
			return true
		}
	}
	return false
}

// IsSquareAttacked returns true if any piece of colour by attacks sq.
// It scans outward from sq rather than generating every enemy move.
func (b *Board) IsSquareAttacked(sq chess.Square, by chess.Colour) bool {
	// Check pawn attacks
	dir := by.PawnDirection()
	for _, df := range []int{-1, 1} {
		from := sq.Offset(-dir, df)
		if from.OnBoard() && b.Piece(from) == (chess.Piece{Type: chess.Pawn, Colour: by}) {
			return true
		}
	}

	// Check knight and king attacks
	if b.hasStepAttacker(sq, by, knightJumps, chess.Knight) ||
		b.hasStepAttacker(sq, by, allDirs, chess.King) {
		return true
	}

	// Check sliding pieces
	return b.hasRayAttacker(sq, by, diagonals, chess.Bishop) ||
		b.hasRayAttacker(sq, by, orthogonals, chess.Rook)
}

// hasStepAttacker reports whether a piece of type pt and colour by sits one
// displacement away from sq.
func (b *Board) hasStepAttacker(sq chess.Square, by chess.Colour, dirs []direction, pt chess.PieceType) bool {
	want := chess.Piece{Type: pt, Colour: by}
	for _, d := range dirs {
		from := sq.Offset(d[0], d[1])
		if from.OnBoard() && b.Piece(from) == want {
			return true
		}
	}
	return false
}

// hasRayAttacker reports whether the first piece along any of dirs from sq
// is a slider of type pt or a queen, of colour by.
func (b *Board) hasRayAttacker(sq chess.Square, by chess.Colour, dirs []direction, pt chess.PieceType) bool {
	for _, d := range dirs {
		for from := sq.Offset(d[0], d[1]); from.OnBoard(); from = from.Offset(d[0], d[1]) {
			p := b.Piece(from)
			if p.IsEmpty() {
				continue
			}
			if p.Colour == by && (p.Type == pt || p.Type == chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

// CanMakeMove reports whether a piece of the side to move stands on m.From
// and m matches one of its pseudo-legal moves by endpoints.
func (b *Board) CanMakeMove(m chess.Move) bool {
	for _, candidate := range b.PieceMoves(m.From) {
		if candidate.Equal(m) {
			return true
		}
	}
	return false
}
