package storage

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// Record is a stored game.
type Record struct {
	Name     string    `json:"name"`
	StartFEN string    `json:"start_fen"`
	MoveList string    `json:"move_list"`
	Plies    int       `json:"plies"`
	SavedAt  time.Time `json:"saved_at"`
}

// RecordFromBoard captures the start position and history of b.
func RecordFromBoard(name string, b *engine.Board) Record {
	start := b.Copy()
	start.UndoMoves(start.MoveCount())
	return Record{
		Name:     name,
		StartFEN: start.FEN(),
		MoveList: output.MoveListString(b),
		Plies:    b.MoveCount(),
	}
}

// Replay rebuilds the board by playing the move list from the start
// position.
func (r Record) Replay() (*engine.Board, error) {
	b, err := engine.NewBoardFromFEN(r.StartFEN)
	if err != nil {
		return nil, fmt.Errorf("game %q: %w", r.Name, err)
	}
	if err := parser.ApplyMoveList(b, r.MoveList); err != nil {
		return nil, fmt.Errorf("game %q: %w", r.Name, err)
	}
	if b.MoveCount() != r.Plies {
		return nil, fmt.Errorf("game %q: replayed %d plies, recorded %d", r.Name, b.MoveCount(), r.Plies)
	}
	return b, nil
}
