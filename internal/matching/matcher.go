// Package matching selects played games by the positions they pass
// through.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameMatcher is the interface for all game matching implementations.
// Match receives a board carrying the game's history; it must not modify
// it.
type GameMatcher interface {
	// Match returns true if the game matches the matcher's criteria.
	Match(b *engine.Board) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple GameMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements GameMatcher.
func (c *CompositeMatcher) Match(b *engine.Board) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	for _, m := range c.matchers {
		if m.Match(b) == (c.mode == MatchAny) {
			return c.mode == MatchAny
		}
	}
	return c.mode == MatchAll
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers in this composite.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// replayPositions calls visit on the game's starting position and after
// each of its plies, stopping early when visit returns true. It reports
// whether any call did.
func replayPositions(b *engine.Board, visit func(*engine.Board) bool) bool {
	board := b.Copy()
	board.UndoMoves(board.MoveCount())
	if visit(board) {
		return true
	}
	for _, m := range b.Moves() {
		if err := board.MakeMove(m); err != nil {
			return false
		}
		if visit(board) {
			return true
		}
	}
	return false
}
