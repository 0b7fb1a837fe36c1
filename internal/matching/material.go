package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// material counts pieces per colour and type.
type material [2][chess.King + 1]int

// MaterialMatcher matches games by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       material
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}

	white, black, _ := strings.Cut(pattern, ":")
	if err := mm.parseSide(white, chess.White); err != nil {
		return nil, err
	}
	if err := mm.parseSide(black, chess.Black); err != nil {
		return nil, err
	}
	return mm, nil
}

// parseSide counts the piece letters of one side of the pattern.
func (mm *MaterialMatcher) parseSide(s string, c chess.Colour) error {
	for i := 0; i < len(s); i++ {
		p, ok := chess.PieceFromFENChar(s[i])
		if !ok || p.Colour != c {
			return fmt.Errorf("material pattern %q: unexpected %q for %s", mm.pattern, s[i], c)
		}
		mm.want[c][p.Type]++
	}
	return nil
}

// Match reports whether any position in the game has the pattern's
// material.
func (mm *MaterialMatcher) Match(b *engine.Board) bool {
	return replayPositions(b, mm.matchPosition)
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	return fmt.Sprintf("MaterialMatcher(%s)", mm.pattern)
}

// matchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) matchPosition(b *engine.Board) bool {
	var have material
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			if p := b.Piece(chess.NewSquare(rank, file)); !p.IsEmpty() {
				have[p.Colour][p.Type]++
			}
		}
	}

	for c := range have {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			if mm.exactMatch && have[c][pt] != mm.want[c][pt] {
				return false
			}
			// Minimal match: at least the specified pieces
			if have[c][pt] < mm.want[c][pt] {
				return false
			}
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
