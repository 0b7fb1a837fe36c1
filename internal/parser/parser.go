package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LoadMoveList resets the board to the starting position and plays the
// move list in text onto it. See ApplyMoveList for the accepted format
// and failure behaviour.
func LoadMoveList(b *engine.Board, text string) error {
	state := b.SaveState()
	b.Reset()
	if err := ApplyMoveList(b, text); err != nil {
		b.RestoreState(state)
		return err
	}
	return nil
}

// ApplyMoveList plays the move list in text from the board's current
// position.
//
// The text is a sequence of "<n>. <white> <black>" groups numbered from
// the board's current full move number without gaps. When Black is to
// move the list opens with "<n>... <black>". Play stops without error at
// the end of the text or at a result token (1-0, 0-1, 1/2-1/2, *).
//
// Failures are *errors.MoveError values wrapping ErrInvalidNotation; the
// board is left exactly as it was before the call.
func ApplyMoveList(b *engine.Board, text string) error {
	state := b.SaveState()
	p := &Parser{lexer: NewLexer(strings.NewReader(text)), board: b}
	if err := p.parseMoveList(); err != nil {
		b.RestoreState(state)
		return err
	}
	return nil
}

// Parser plays the tokens of one move list onto a board.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	board        *engine.Board
	number       int
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// atEnd reports whether the current token ends the move list.
func (p *Parser) atEnd() bool {
	switch p.currentToken.Type {
	case EOFToken, TerminatingResult:
		return true
	}
	return false
}

// parseMoveList plays every numbered group until the list ends.
func (p *Parser) parseMoveList() error {
	p.number = p.board.FullMoveNumber()
	p.nextToken()

	if p.board.ActiveColour() == chess.Black && !p.atEnd() {
		if err := p.expectNumber(chess.Black); err != nil {
			return err
		}
		done, err := p.parseHalfMove(chess.Black)
		if err != nil || done {
			return err
		}
		p.number++
		p.nextToken()
	}

	for !p.atEnd() {
		if err := p.expectNumber(chess.White); err != nil {
			return err
		}
		done, err := p.parseHalfMove(chess.White)
		if err != nil || done {
			return err
		}

		p.nextToken()
		// A restated "<n>..." may precede Black's move
		if p.currentToken.Type == MoveNumber && p.currentToken.Ellipsis && p.currentToken.MoveNum == p.number {
			p.nextToken()
		}
		done, err = p.parseHalfMove(chess.Black)
		if err != nil || done {
			return err
		}
		p.number++
		p.nextToken()
	}
	return nil
}

// expectNumber checks that the current token is the expected move number
// and moves past it.
func (p *Parser) expectNumber(side chess.Colour) error {
	tok := p.currentToken
	if tok.Type != MoveNumber {
		return p.moveError(side, tok.Text, fmt.Sprintf("expected move number %d, found %s", p.number, tok))
	}
	if tok.MoveNum != p.number {
		return p.moveError(side, tok.Text, fmt.Sprintf("expected move number %d, found %d", p.number, tok.MoveNum))
	}
	p.nextToken()
	return nil
}

// parseHalfMove plays the current token as side's move. It reports done
// when the list ends where a move was expected.
func (p *Parser) parseHalfMove(side chess.Colour) (done bool, err error) {
	tok := p.currentToken
	switch tok.Type {
	case EOFToken, TerminatingResult:
		return true, nil
	case MoveToken:
	default:
		return false, p.moveError(side, tok.Text, fmt.Sprintf("expected a move, found %s", tok))
	}

	d, err := DecodeMove(tok.Text)
	if err != nil {
		return false, p.moveError(side, tok.Text, "unrecognised move")
	}
	m, err := p.resolve(d)
	if err != nil {
		return false, p.moveError(side, tok.Text, err.Error())
	}
	if err := p.board.MakeMove(m); err != nil {
		return false, p.moveError(side, tok.Text, err.Error())
	}
	return false, nil
}

// resolve finds the single legal move matching d.
func (p *Parser) resolve(d Decoded) (chess.Move, error) {
	var candidates []chess.Move
	for _, m := range p.board.GenerateMoves() {
		if d.Matches(m) {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return chess.Move{}, fmt.Errorf("no legal move matches")
	case 1:
		return candidates[0].WithPromotion(d.Promotion), nil
	}
	return chess.Move{}, fmt.Errorf("ambiguous: %d legal moves match", len(candidates))
}

func (p *Parser) moveError(side chess.Colour, text, reason string) error {
	return &errors.MoveError{
		Err:        errors.ErrInvalidNotation,
		MoveNumber: p.number,
		Side:       side.String(),
		MoveText:   text,
		Reason:     reason,
	}
}
