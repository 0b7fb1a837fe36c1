package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Lexer tokenizes move-list text. Tag pairs, brace and semicolon comments,
// NAGs, annotation glyphs and parenthesised variations are skipped.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	// Initialize all to error
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	// Whitespace
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	// Brackets and quotes
	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab[';'] = LineComment
	chTab['%'] = LineComment

	// Special symbols
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['+'] = CheckSymbol
	chTab['#'] = CheckSymbol
	chTab['.'] = Dot
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['*'] = Star

	// Digits
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}

	// Alpha characters (upper and lowercase)
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	// Files (a-h) and ranks (1-8)
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}

	// Piece letters, capture, promotion, castling and trailing glyphs
	for _, c := range []byte("KQRBNxX=O0-+#!?") {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	// Need a new line?
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace, TagEnd, Dot:
		return &Token{Type: NoToken}

	case TagStart:
		l.skipPast(']')
		return &Token{Type: NoToken}

	case DoubleQuote:
		l.skipPast('"')
		return &Token{Type: NoToken}

	case CommentStart:
		if !l.skipPast('}') {
			return &Token{Type: ErrorToken, Text: "unterminated comment"}
		}
		return &Token{Type: NoToken}

	case LineComment:
		l.pos = len(l.line)
		return &Token{Type: NoToken}

	case NAGToken:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Digit {
			l.advance()
		}
		return &Token{Type: NoToken}

	case Annotate, CheckSymbol:
		for l.pos < len(l.line) && (chTab[l.currentChar()] == Annotate || chTab[l.currentChar()] == CheckSymbol) {
			l.advance()
		}
		return &Token{Type: NoToken}

	case RAVStart:
		if !l.skipVariation() {
			return &Token{Type: ErrorToken, Text: "unterminated variation"}
		}
		return &Token{Type: NoToken}

	case Star:
		return &Token{Type: TerminatingResult, Text: "*"}

	case Alpha:
		return l.gatherMove(symbolStart)

	case Digit:
		return l.gatherNumeric(ch, symbolStart)
	}

	return &Token{Type: ErrorToken, Text: l.line[symbolStart:l.pos]}
}

// skipPast consumes input up to and including the closing character,
// reading further lines as needed. It reports whether it was found.
func (l *Lexer) skipPast(closing byte) bool {
	for {
		if i := strings.IndexByte(l.line[l.pos:], closing); i >= 0 {
			l.pos += i + 1
			return true
		}
		if !l.readLine() {
			l.pos = len(l.line)
			return false
		}
	}
}

// skipVariation consumes a parenthesised variation, which may nest and
// may contain comments.
func (l *Lexer) skipVariation() bool {
	depth := 1
	for depth > 0 {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return false
			}
			continue
		}
		ch := l.currentChar()
		l.advance()
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case '{':
			if !l.skipPast('}') {
				return false
			}
		case ';':
			l.pos = len(l.line)
		}
	}
	return true
}

// gatherMove gathers a move token starting with a letter.
func (l *Lexer) gatherMove(symbolStart int) *Token {
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	if !moveChars[text[0]] {
		// Skip the rest of an unknown word so it is reported whole
		for l.pos < len(l.line) && chTab[l.currentChar()] == Alpha {
			l.advance()
		}
		return &Token{Type: ErrorToken, Text: l.line[symbolStart:l.pos]}
	}
	return &Token{Type: MoveToken, Text: text}
}

// gatherNumeric handles numeric tokens: move numbers, results and
// castling written with zeros.
func (l *Lexer) gatherNumeric(initialDigit byte, symbolStart int) *Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "0-1"}
		}
		if strings.HasPrefix(remaining, "-0") {
			return l.gatherMove(symbolStart)
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "1-0"}
		}
		if strings.HasPrefix(remaining, "/2-1/2") {
			l.pos += 6
			return &Token{Type: TerminatingResult, Text: "1/2-1/2"}
		}
	}

	return l.gatherMoveNumber(symbolStart)
}

// gatherMoveNumber parses a move number token and its trailing dots.
func (l *Lexer) gatherMoveNumber(start int) *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] == Digit {
		l.advance()
	}
	digits := l.line[start:l.pos]

	dots := 0
	for l.pos < len(l.line) && l.currentChar() == '.' {
		l.advance()
		dots++
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return &Token{Type: ErrorToken, Text: digits}
	}
	return &Token{Type: MoveNumber, MoveNum: n, Text: l.line[start:l.pos], Ellipsis: dots >= 3}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
