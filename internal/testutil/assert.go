// Package testutil provides shared test helpers: go-cmp assertions and
// board fixtures built through the public engine and parser APIs.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Errorf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails unless err wraps target.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v, want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertMoves compares the board's history with coordinate moves such as
// "e2e4" or "e7e8q".
func AssertMoves(t testing.TB, b *engine.Board, want ...string) {
	t.Helper()
	AssertEqual(t, UCIs(b), want, "history")
}

// AssertFEN compares the board's position string.
func AssertFEN(t testing.TB, b *engine.Board, want string) {
	t.Helper()
	if got := b.FEN(); got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
}

// prefix formats optional message arguments as "msg: ".
func prefix(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprintf("%v: ", msgAndArgs[0])
}
