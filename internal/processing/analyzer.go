// Package processing summarises played games: checks given, captures,
// promotions and the material balance reached.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Checks     int
	Captures   int
	Promotions int

	HasUnderpromotion bool

	// FinalInCheck is set when the side to move is in check at the end
	FinalInCheck bool

	// MaterialBalance is White's material minus Black's, kings excluded
	MaterialBalance int

	// Zobrist hashes of every position, starting position first
	Positions []uint64
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// Summary renders the analysis as a short comma separated description.
func (ga *GameAnalysis) Summary() string {
	s := fmt.Sprintf("%d checks, %d captures, %d promotions, material %+d",
		ga.Checks, ga.Captures, ga.Promotions, ga.MaterialBalance)
	if ga.FinalInCheck {
		s += ", in check"
	}
	return s
}

// AnalyzeGame replays the history of b from its starting position and
// analyses it. b is not modified.
func AnalyzeGame(b *engine.Board) (*GameAnalysis, error) {
	board := b.Copy()
	board.UndoMoves(board.MoveCount())
	analysis := &GameAnalysis{
		Positions: []uint64{hashing.ZobristHash(board)},
	}

	for i, m := range b.Moves() {
		if err := board.MakeMove(m); err != nil {
			return nil, fmt.Errorf("replaying ply %d (%s): %w", i+1, m.UCI(), err)
		}

		if m.IsCapture() {
			analysis.Captures++
		}
		if m.Promotion != chess.NoPieceType {
			analysis.Promotions++
			if m.Promotion != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if board.InCheck(board.ActiveColour()) {
			analysis.Checks++
		}
		analysis.Positions = append(analysis.Positions, hashing.ZobristHash(board))
	}

	analysis.FinalInCheck = board.InCheck(board.ActiveColour())
	analysis.MaterialBalance = MaterialBalance(board)
	return analysis, nil
}

// MaterialBalance returns White's material minus Black's using the
// informational piece values. Kings are not counted.
func MaterialBalance(b *engine.Board) int {
	balance := 0
	forEachPiece(b, func(p chess.Piece) {
		if p.Type == chess.King {
			return
		}
		if p.Colour == chess.White {
			balance += p.Type.Value()
		} else {
			balance -= p.Type.Value()
		}
	})
	return balance
}

func forEachPiece(b *engine.Board, fn func(chess.Piece)) {
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			if p := b.Piece(chess.NewSquare(rank, file)); !p.IsEmpty() {
				fn(p)
			}
		}
	}
}
