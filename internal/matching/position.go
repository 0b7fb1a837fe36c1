package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// FENPattern represents a FEN pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern string
	Label   string // optional label for matched position
	Hash    uint64 // position hash for exact FEN matches
	IsExact bool   // true if this is an exact FEN (no wildcards)
	ranks   []string
}

// PositionMatcher provides position-based game filtering.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact position to match. Placement, side to move and
// castling rights must all agree.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	hash := hashing.ZobristHash(board)
	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern
	return nil
}

// AddPattern adds a placement pattern with wildcards. With includeInvert
// the colour-reversed pattern is added too.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) error {
	ranks := strings.Split(pattern, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("position pattern %q: want %d ranks, got %d", pattern, chess.BoardSize, len(ranks))
	}
	pm.patterns = append(pm.patterns, &FENPattern{Pattern: pattern, Label: label, ranks: ranks})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
	return nil
}

// MatchGame checks if any position in the game matches a pattern.
// Returns the matching pattern (with label) or nil.
func (pm *PositionMatcher) MatchGame(b *engine.Board) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	var found *FENPattern
	replayPositions(b, func(board *engine.Board) bool {
		found = pm.matchPosition(board)
		return found != nil
	})
	return found
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(b *engine.Board) bool {
	return pm.MatchGame(b) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d patterns)", len(pm.patterns))
}

// matchPosition checks if a position matches any pattern.
func (pm *PositionMatcher) matchPosition(board *engine.Board) *FENPattern {
	// First check exact hash matches (fast)
	if len(pm.exactHashes) > 0 {
		if pattern, ok := pm.exactHashes[hashing.ZobristHash(board)]; ok {
			return pattern
		}
	}

	var ranks [chess.BoardSize]string
	for _, pattern := range pm.patterns {
		if pattern.IsExact {
			continue
		}
		if ranks[0] == "" {
			ranks = boardToRanks(board)
		}
		if matchRanks(ranks, pattern.ranks) {
			return pattern
		}
	}
	return nil
}

// matchRanks checks every rank of a board against a pattern.
func matchRanks(boardRanks [chess.BoardSize]string, patternRanks []string) bool {
	for i, patternRank := range patternRanks {
		if !matchRank(boardRanks[i], patternRank) {
			return false
		}
	}
	return true
}

// boardToRanks converts a board to rank strings, rank 8 first, with '_'
// for empty squares.
func boardToRanks(board *engine.Board) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string
	for r := chess.FirstRank; r <= chess.LastRank; r++ {
		var sb strings.Builder
		for f := chess.FirstFile; f <= chess.LastFile; f++ {
			sb.WriteByte(pieceToChar(board.Piece(chess.NewSquare(r, f))))
		}
		ranks[r] = sb.String()
	}
	return ranks
}

// pieceToChar converts a piece to its FEN character, '_' when empty.
func pieceToChar(piece chess.Piece) byte {
	if piece.IsEmpty() {
		return '_'
	}
	return piece.FENChar()
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		c := patternRank[pi]
		if c == '*' {
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			// Try matching rest of pattern at each position
			for ; bi <= len(boardRank); bi++ {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
			}
			return false
		}

		if c >= '1' && c <= '8' {
			// Number means N empty squares
			for n := int(c - '0'); n > 0; n-- {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++
			continue
		}

		if bi >= len(boardRank) || !matchSquare(boardRank[bi], c) {
			return false
		}
		bi++
		pi++
	}

	return bi == len(boardRank)
}

// matchSquare matches one board character against a single-square
// pattern character.
func matchSquare(sq, c byte) bool {
	switch c {
	case '?':
		return true
	case '!':
		return sq != '_'
	case 'A':
		return sq >= 'A' && sq <= 'Z'
	case 'a':
		return sq >= 'a' && sq <= 'z'
	}
	return sq == c
}

// invertPattern swaps the colours of a pattern and mirrors its ranks.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32) // to lowercase
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32) // to uppercase
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
