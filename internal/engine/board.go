// Package engine implements the chess rules: board state, legal move
// generation, make/undo with full history and the position-string codec.
//
// A Board is a single-owner state machine and is not safe for concurrent
// use. Callers that need parallelism give each goroutine its own Board.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// appliedMove is one history record: the move as applied plus the castling
// rights in force before it, which is everything UndoMove needs.
type appliedMove struct {
	move       chess.Move
	prevRights chess.CastlingRights
}

// Board holds the complete state of a game in progress.
type Board struct {
	squares [chess.BoardSize][chess.BoardSize]chess.Piece
	active  chess.Colour
	rights  chess.CastlingRights
	history []appliedMove

	// Full move number of the loaded position; only used by FEN export.
	fullmove int

	// Set while a move is being trialled for legality.
	simulating bool
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the standard starting position and clears the history.
func (b *Board) Reset() {
	if err := LoadPosition(b, InitialFEN); err != nil {
		panic(err)
	}
}

// clear empties the grid and history.
func (b *Board) clear() {
	b.squares = [chess.BoardSize][chess.BoardSize]chess.Piece{}
	b.active = chess.White
	b.rights = chess.NoCastling
	b.history = b.history[:0]
	b.fullmove = 1
}

// PieceAt returns the piece at the given rank and file.
// Coordinates outside the board fail with ErrOutOfBounds.
func (b *Board) PieceAt(rank, file int) (chess.Piece, error) {
	sq := chess.NewSquare(rank, file)
	if !sq.OnBoard() {
		return chess.NoPiece, fmt.Errorf("square (%d,%d): %w", rank, file, errors.ErrOutOfBounds)
	}
	return b.squares[rank][file], nil
}

// Piece returns the piece on an on-board square.
func (b *Board) Piece(sq chess.Square) chess.Piece {
	return b.squares[sq.Rank][sq.File]
}

func (b *Board) set(sq chess.Square, p chess.Piece) {
	b.squares[sq.Rank][sq.File] = p
}

// ActiveColour returns the side to move.
func (b *Board) ActiveColour() chess.Colour {
	return b.active
}

// CastlingRights returns the remaining castling rights.
func (b *Board) CastlingRights() chess.CastlingRights {
	return b.rights
}

// CanCastleKingside reports whether the colour keeps its kingside right.
func (b *Board) CanCastleKingside(c chess.Colour) bool {
	return b.rights.Has(chess.KingsideFor(c))
}

// CanCastleQueenside reports whether the colour keeps its queenside right.
func (b *Board) CanCastleQueenside(c chess.Colour) bool {
	return b.rights.Has(chess.QueensideFor(c))
}

// LastMove returns the most recently applied move.
func (b *Board) LastMove() (chess.Move, bool) {
	if len(b.history) == 0 {
		return chess.Move{}, false
	}
	return b.history[len(b.history)-1].move, true
}

// Moves returns the applied moves, oldest first.
func (b *Board) Moves() []chess.Move {
	moves := make([]chess.Move, len(b.history))
	for i, rec := range b.history {
		moves[i] = rec.move
	}
	return moves
}

// MoveCount returns the number of applied plies.
func (b *Board) MoveCount() int {
	return len(b.history)
}

// StartMoveNumber returns the full move number of the first recorded ply.
func (b *Board) StartMoveNumber() int {
	return b.fullmove
}

// StartColour returns the side that moved first in the recorded history.
func (b *Board) StartColour() chess.Colour {
	if len(b.history) == 0 {
		return b.active
	}
	return b.history[0].move.Piece.Colour
}

// FullMoveNumber returns the full move number of the current position.
func (b *Board) FullMoveNumber() int {
	n := b.fullmove
	colour := b.StartColour()
	for range b.history {
		if colour == chess.Black {
			n++
		}
		colour = colour.Opposite()
	}
	return n
}

// findKing returns the square of the colour's king.
func (b *Board) findKing(c chess.Colour) (chess.Square, bool) {
	king := chess.Piece{Type: chess.King, Colour: c}
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			if b.squares[rank][file] == king {
				return chess.NewSquare(rank, file), true
			}
		}
	}
	return chess.Square{}, false
}

// Copy returns an independent deep copy of the board, history included.
func (b *Board) Copy() *Board {
	c := *b
	c.history = append([]appliedMove(nil), b.history...)
	c.simulating = false
	return &c
}

// State is an opaque snapshot taken by SaveState.
type State struct {
	board *Board
}

// SaveState captures the complete board state.
func (b *Board) SaveState() State {
	return State{board: b.Copy()}
}

// RestoreState returns the board to a snapshot taken by SaveState.
func (b *Board) RestoreState(s State) {
	if s.board == nil {
		return
	}
	saved := s.board.Copy()
	*b = *saved
}

// Equal reports whether two boards hold the same position, side to move,
// castling rights and history.
func (b *Board) Equal(other *Board) bool {
	if b.squares != other.squares || b.active != other.active ||
		b.rights != other.rights || b.fullmove != other.fullmove ||
		len(b.history) != len(other.history) {
		return false
	}
	for i := range b.history {
		if b.history[i] != other.history[i] {
			return false
		}
	}
	return true
}

// String renders the grid with rank 8 on top, for debugging.
func (b *Board) String() string {
	buf := make([]byte, 0, chess.BoardSize*(chess.BoardSize+1))
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p := b.squares[rank][file]
			if p.IsEmpty() {
				buf = append(buf, '.')
			} else {
				buf = append(buf, p.FENChar())
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
