package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// signature identifies a finished move list.
type signature struct {
	hash  uint64
	plies int
}

// DuplicateDetector remembers the final positions it has seen. It is safe
// for concurrent use.
type DuplicateDetector struct {
	mu sync.Mutex

	// exactMatch also requires the same number of plies
	exactMatch bool
	seen       map[signature]string
	duplicates int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		exactMatch: exactMatch,
		seen:       make(map[signature]string),
	}
}

func (d *DuplicateDetector) signatureOf(b *engine.Board) signature {
	sig := signature{hash: ZobristHash(b)}
	if d.exactMatch {
		sig.plies = b.MoveCount()
	}
	return sig
}

// CheckAndAdd records the final position of b under name. When an earlier
// board reached the same position it returns that board's name and true.
func (d *DuplicateDetector) CheckAndAdd(name string, b *engine.Board) (string, bool) {
	sig := d.signatureOf(b)

	d.mu.Lock()
	defer d.mu.Unlock()

	if first, ok := d.seen[sig]; ok {
		d.duplicates++
		return first, true
	}
	d.seen[sig] = name
	return "", false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duplicates
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[signature]string)
	d.duplicates = 0
}
