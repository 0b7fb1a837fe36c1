// Package parser imports algebraic move lists onto an engine.Board.
package parser

import "strconv"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	MoveNumber
	MoveToken
	TerminatingResult
	ErrorToken

	// Internal character classes
	Whitespace
	TagStart
	TagEnd
	DoubleQuote
	CommentStart
	CommentEnd
	LineComment
	NAGToken
	Annotate
	CheckSymbol
	Dot
	RAVStart
	RAVEnd
	Alpha
	Digit
	Star
	NoToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	MoveNumber:        "MOVE_NUMBER",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
	Whitespace:        "WHITESPACE",
	TagStart:          "TAG_START",
	TagEnd:            "TAG_END",
	DoubleQuote:       "DOUBLE_QUOTE",
	CommentStart:      "COMMENT_START",
	CommentEnd:        "COMMENT_END",
	LineComment:       "LINE_COMMENT",
	NAGToken:          "NAG",
	Annotate:          "ANNOTATE",
	CheckSymbol:       "CHECK_SYMBOL",
	Dot:               "DOT",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	Alpha:             "ALPHA",
	Digit:             "DIGIT",
	Star:              "STAR",
	NoToken:           "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the move text, result or offending characters
	Text string

	// MoveNum holds move numbers
	MoveNum int

	// Ellipsis is set for a number written "N...", which announces a
	// Black move
	Ellipsis bool

	// Line for error reporting
	Line int
}

// String describes the token for error messages.
func (t *Token) String() string {
	switch t.Type {
	case EOFToken:
		return "end of text"
	case MoveNumber:
		return "move number " + strconv.Itoa(t.MoveNum)
	}
	return t.Text
}
