package hashing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestZobristHash_Consistency(t *testing.T) {
	a := engine.NewBoard()
	b := engine.NewBoard()
	if ZobristHash(a) != ZobristHash(b) {
		t.Error("identical positions hash differently")
	}
}

func TestZobristHash_Transposition(t *testing.T) {
	a := testutil.MustGame(t, "1. Nf3 Nf6 2. Nc3 Nc6")
	b := testutil.MustGame(t, "1. Nc3 Nc6 2. Nf3 Nf6")
	if ZobristHash(a) != ZobristHash(b) {
		t.Error("transposed move orders hash differently")
	}
}

func TestZobristHash_Differences(t *testing.T) {
	base := testutil.MustLoadPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	tests := []struct {
		name string
		fen  string
	}{
		{"side to move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"},
		{"castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1"},
		{"placement", "r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := testutil.MustLoadPosition(t, tt.fen)
			if ZobristHash(other) == ZobristHash(base) {
				t.Errorf("%s does not change the hash", tt.name)
			}
		})
	}

	// The move counter is not part of the position
	later := testutil.MustLoadPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 40")
	testutil.AssertEqual(t, ZobristHash(later), ZobristHash(base))
}

func TestZobristHash_UndoRestores(t *testing.T) {
	b := engine.NewBoard()
	before := ZobristHash(b)
	testutil.MustPlay(t, b, "1. e4 e5 2. Ke2")
	b.UndoMoves(3)
	testutil.AssertEqual(t, ZobristHash(b), before)
}

func TestDuplicateDetector(t *testing.T) {
	d := NewDuplicateDetector(false)

	if _, dup := d.CheckAndAdd("first", testutil.MustGame(t, "1. Nf3 Nf6 2. Nc3 Nc6")); dup {
		t.Error("first game reported as duplicate")
	}
	first, dup := d.CheckAndAdd("second", testutil.MustGame(t, "1. Nc3 Nc6 2. Nf3 Nf6"))
	if !dup || first != "first" {
		t.Errorf("CheckAndAdd() = %q, %v; want first, true", first, dup)
	}
	// Knights out and back reach the start position in four plies
	if _, dup := d.CheckAndAdd("third", testutil.MustGame(t, "1. Nf3 Nf6 2. Ng1 Ng8")); dup {
		t.Error("different position reported as duplicate")
	}

	testutil.AssertEqual(t, d.DuplicateCount(), 1, "duplicates")
	testutil.AssertEqual(t, d.UniqueCount(), 2, "unique")

	d.Reset()
	testutil.AssertEqual(t, d.UniqueCount(), 0, "unique after reset")
	testutil.AssertEqual(t, d.DuplicateCount(), 0, "duplicates after reset")
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	start := engine.NewBoard()
	roundTrip := testutil.MustGame(t, "1. Nf3 Nf6 2. Ng1 Ng8")

	loose := NewDuplicateDetector(false)
	loose.CheckAndAdd("start", start)
	if _, dup := loose.CheckAndAdd("knights", roundTrip); !dup {
		t.Error("same position not detected without exact matching")
	}

	exact := NewDuplicateDetector(true)
	exact.CheckAndAdd("start", start)
	if _, dup := exact.CheckAndAdd("knights", roundTrip); dup {
		t.Error("different ply counts matched with exact matching")
	}
}

// TestDuplicateDetector_Concurrent is designed to be run with -race.
func TestDuplicateDetector_Concurrent(t *testing.T) {
	d := NewDuplicateDetector(true)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := engine.NewBoard()
			if i%2 == 1 {
				if err := b.MakeMove(b.GenerateMoves()[0]); err != nil {
					t.Error(err)
					return
				}
			}
			d.CheckAndAdd(fmt.Sprint(i), b)
		}(i)
	}
	wg.Wait()

	testutil.AssertEqual(t, d.UniqueCount(), 2, "unique")
	testutil.AssertEqual(t, d.DuplicateCount(), 18, "duplicates")
}
