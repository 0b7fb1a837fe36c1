// Package eco provides ECO (Encyclopaedia of Chess Openings) classification.
package eco

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// ECOHalfMoveLimit is the maximum distance from an ECO line for a match.
const ECOHalfMoveLimit = 6

//go:embed openings.toml
var defaultBook string

// ECOEntry represents a single ECO classification entry.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	RequiredHash   uint64 // Position hash for matching
	CumulativeHash uint64 // Cumulative hash of all moves
	HalfMoves      int    // Number of half-moves to reach this position
}

// String renders the entry as "B90 Sicilian Defence: Najdorf".
func (e *ECOEntry) String() string {
	s := e.ECOCode + " " + e.Opening
	if e.Variation != "" {
		s += ": " + e.Variation
	}
	return s
}

// bookEntry is one [[opening]] table of a book file.
type bookEntry struct {
	ECO       string `toml:"eco"`
	Name      string `toml:"name"`
	Variation string `toml:"variation"`
	Moves     string `toml:"moves"`
}

// ECOClassifier provides ECO classification for chess games.
type ECOClassifier struct {
	table         map[uint64][]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		table:        make(map[uint64][]*ECOEntry),
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// Default returns a classifier loaded with the built-in opening book.
func Default() (*ECOClassifier, error) {
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(defaultBook)); err != nil {
		return nil, err
	}
	return ec, nil
}

// LoadFromFile loads ECO data from a TOML opening book.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: path is a user-specified book
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.LoadFromReader(file)
}

// LoadFromReader loads ECO data from a reader. The book is a list of
// [[opening]] tables with eco, name, variation and moves keys.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	var book struct {
		Openings []bookEntry `toml:"opening"`
	}
	md, err := toml.NewDecoder(r).Decode(&book)
	if err != nil {
		return fmt.Errorf("error parsing ECO file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("error parsing ECO file: unknown key %q", undecoded[0].String())
	}

	for i, entry := range book.Openings {
		if err := ec.addECOEntry(entry); err != nil {
			return fmt.Errorf("opening %d (%s): %w", i+1, entry.ECO, err)
		}
	}
	return nil
}

// addECOEntry plays a book line and adds its final position to the table.
func (ec *ECOClassifier) addECOEntry(be bookEntry) error {
	if be.ECO == "" {
		return fmt.Errorf("missing eco code")
	}

	board := engine.NewBoard()
	if err := parser.ApplyMoveList(board, be.Moves); err != nil {
		return err
	}
	if board.MoveCount() == 0 {
		return fmt.Errorf("no moves")
	}

	entry := &ECOEntry{
		ECOCode:   be.ECO,
		Opening:   be.Name,
		Variation: be.Variation,
		HalfMoves: board.MoveCount(),
	}
	replay(board, func(posHash uint64, _ int) bool {
		entry.CumulativeHash ^= posHash
		entry.RequiredHash = posHash
		return true
	})

	// Check for collision
	for _, existing := range ec.table[entry.RequiredHash] {
		if existing.HalfMoves == entry.HalfMoves && existing.CumulativeHash == entry.CumulativeHash {
			return nil
		}
	}

	ec.table[entry.RequiredHash] = append(ec.table[entry.RequiredHash], entry)
	ec.entriesLoaded++

	if entry.HalfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = entry.HalfMoves + ECOHalfMoveLimit
	}
	return nil
}

// ClassifyGame finds the best ECO match for the game played on b.
// Returns the ECO entry or nil if no match found.
func (ec *ECOClassifier) ClassifyGame(b *engine.Board) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}

	var bestMatch *ECOEntry
	var cumulativeHash uint64
	replay(b, func(posHash uint64, halfMoves int) bool {
		// Don't bother checking if we're past max ECO depth
		if halfMoves > ec.maxHalfMoves {
			return false
		}
		cumulativeHash ^= posHash
		if match := ec.findMatch(posHash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
		return true
	})
	return bestMatch
}

// findMatch looks up a position in the ECO table.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	var possible *ECOEntry
	for _, entry := range ec.table[posHash] {
		// Exact match on position and cumulative hash
		if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
			return entry
		}
		// Partial match within limit
		if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
			possible = entry
		}
	}
	return possible
}

// EntriesLoaded returns the number of ECO entries loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

// replay walks the history of b from its starting position, passing the
// hash of the position after each ply and the ply count so far. It stops
// when visit returns false.
func replay(b *engine.Board, visit func(posHash uint64, halfMoves int) bool) {
	board := b.Copy()
	board.UndoMoves(board.MoveCount())
	for i, m := range b.Moves() {
		if err := board.MakeMove(m); err != nil {
			return
		}
		if !visit(hashing.ZobristHash(board), i+1) {
			return
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
