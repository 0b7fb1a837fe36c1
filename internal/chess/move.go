package chess

// Move describes a transition between two squares.
//
// From and To identify the move. Piece and Captured are stamped by the
// board when it generates or applies the move; Promotion is left as
// NoPieceType until the caller chooses a promotion piece.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece standing on To before the move (NoPiece if none).
	Captured Piece

	// The piece promoted to (NoPieceType if not chosen).
	Promotion PieceType
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// WithPromotion returns a copy of the move with the promotion piece set.
func (m Move) WithPromotion(pt PieceType) Move {
	m.Promotion = pt
	return m
}

// Equal compares the endpoints only. Moves that differ only in their
// promotion choice are equal, which is what legality lookups need.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// IsKingsideCastle returns true if the move is a king stepping from the
// e-file to the g-file.
func (m Move) IsKingsideCastle() bool {
	return m.Piece.Type == King && m.From.Rank == m.To.Rank &&
		m.From.File == 4 && m.To.File == 6
}

// IsQueensideCastle returns true if the move is a king stepping from the
// e-file to the c-file.
func (m Move) IsQueensideCastle() bool {
	return m.Piece.Type == King && m.From.Rank == m.To.Rank &&
		m.From.File == 4 && m.To.File == 2
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.IsKingsideCastle() || m.IsQueensideCastle()
}

// IsPromotion returns true if a pawn reaches the far rank of its colour.
func (m Move) IsPromotion() bool {
	return m.Piece.Type == Pawn && m.To.Rank == m.Piece.Colour.Opposite().BackRank()
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// UCI returns the move in long algebraic coordinate form, e.g. "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(W(m.Promotion).FENChar() + ('a' - 'A'))
	}
	return s
}

// String returns a readable form such as "e2 -> e4".
func (m Move) String() string {
	return m.From.String() + " -> " + m.To.String()
}
