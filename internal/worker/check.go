package worker

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// CheckMoveLists returns a ProcessFunc that plays each item's move list
// from startFEN, or from the initial position when startFEN is empty.
func CheckMoveLists(startFEN string) ProcessFunc {
	return func(item WorkItem) Result {
		res := Result{Index: item.Index, Name: item.Name}

		var b *engine.Board
		if startFEN == "" {
			b = engine.NewBoard()
		} else {
			var err error
			if b, err = engine.NewBoardFromFEN(startFEN); err != nil {
				res.Err = err
				return res
			}
		}

		if err := parser.ApplyMoveList(b, item.Text); err != nil {
			res.Err = err
			return res
		}
		res.Board = b
		return res
	}
}

// Run processes items on a pool of the given size and returns the results
// in submission order.
func Run(items []WorkItem, workers int, fn ProcessFunc) []Result {
	pool := NewPool(workers, workers*2, fn)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
