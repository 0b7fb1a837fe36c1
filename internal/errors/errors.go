// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the failure taxonomy of the core and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPosition indicates a malformed position string.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidNotation indicates a malformed or unresolvable move token.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates a missing entry in the game archive.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps errors with move-list context: the move number, the side
// to move and the offending token. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err        error  // The underlying error
	MoveNumber int    // 1-based full move number (0 if not applicable)
	Side       string // "White" or "Black" (empty if not applicable)
	MoveText   string // The move text that caused the error (if applicable)
	Reason     string // Human readable detail
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.MoveNumber > 0 {
		parts = append(parts, fmt.Sprintf("move number %d", e.MoveNumber))
	}
	if e.Side != "" {
		parts = append(parts, strings.ToLower(e.Side))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a position-string error naming the offending field
// and token.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Position field, e.g. "placement", "active colour"
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with field and token context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Illegal returns an ErrIllegalMove carrying a human readable reason.
func Illegal(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrIllegalMove)
}
