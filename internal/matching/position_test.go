package matching

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// --- pieceToChar tests ---

func TestPieceToChar(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.Piece
		want  byte
	}{
		{"empty", chess.NoPiece, '_'},
		{"white pawn", chess.W(chess.Pawn), 'P'},
		{"white knight", chess.W(chess.Knight), 'N'},
		{"white king", chess.W(chess.King), 'K'},
		{"black pawn", chess.B(chess.Pawn), 'p'},
		{"black queen", chess.B(chess.Queen), 'q'},
		{"black king", chess.B(chess.King), 'k'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pieceToChar(tt.piece); got != tt.want {
				t.Errorf("pieceToChar(%v) = %c, want %c", tt.piece, got, tt.want)
			}
		})
	}
}

// --- boardToRanks tests ---

func TestBoardToRanks_InitialPosition(t *testing.T) {
	ranks := boardToRanks(engine.NewBoard())

	want := [chess.BoardSize]string{
		"rnbqkbnr",
		"pppppppp",
		"________",
		"________",
		"________",
		"________",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	testutil.AssertEqual(t, ranks, want, "boardToRanks")
}

// --- matchRank tests ---

func TestMatchRank(t *testing.T) {
	tests := []struct {
		board   string
		pattern string
		want    bool
	}{
		{"rnbqkbnr", "rnbqkbnr", true},
		{"rnbqkbnr", "rnbqkbnR", false},
		{"________", "8", true},
		{"____P___", "4P3", true},
		{"____P___", "3P4", false},
		{"____P___", "4A3", true},
		{"____p___", "4A3", false},
		{"____p___", "4a3", true},
		{"____p___", "????!???", true},
		{"________", "????!???", false},
		{"____p___", "*p*", true},
		{"________", "*p*", false},
		{"r___k__r", "r*r", true},
		{"r___k__r", "r*", true},
		{"r___k__r", "*", true},
		{"r___k__r", "r___k__", false},
		{"r___k__r", "r___k__r_", false},
		{"r___k__r", "r3k2r", true},
		{"r___k__r", "r_2k2r", true},
		{"r___k__r", "r_3k2r", false},
	}

	for _, tt := range tests {
		t.Run(tt.board+" "+tt.pattern, func(t *testing.T) {
			if got := matchRank(tt.board, tt.pattern); got != tt.want {
				t.Errorf("matchRank(%q, %q) = %v, want %v", tt.board, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestInvertPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"*/*/*/*/4P3/*/*/*", "*/*/*/4p3/*/*/*/*"},
		{"*/*/*/*/*/*/*/A*", "a*/*/*/*/*/*/*/*"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, invertPattern(tt.pattern), tt.want, "invertPattern(%q)", tt.pattern)
	}
}

// --- PositionMatcher tests ---

func TestPositionMatcher_AddFEN(t *testing.T) {
	pm := NewPositionMatcher()
	err := pm.AddFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "open game")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pm.PatternCount(), 1, "PatternCount")

	match := pm.MatchGame(testutil.MustGame(t, "1. e4 e5 2. Nf3 Nc6"))
	if match == nil || match.Label != "open game" {
		t.Fatalf("MatchGame() = %+v, want the open game position", match)
	}
	if !match.IsExact {
		t.Error("AddFEN pattern not marked exact")
	}

	if pm.Match(testutil.MustGame(t, "1. d4 d5")) {
		t.Error("matched a game that never reached the position")
	}

	blackToMove := NewPositionMatcher()
	err = blackToMove.AddFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2", "")
	testutil.AssertNoError(t, err)
	if blackToMove.Match(testutil.MustGame(t, "1. e4 e5 2. Nf3 Nc6")) {
		t.Error("matched the placement with the wrong side to move")
	}
}

func TestPositionMatcher_AddFEN_Invalid(t *testing.T) {
	pm := NewPositionMatcher()
	if err := pm.AddFEN("not a position", ""); err == nil {
		t.Error("AddFEN() succeeded on a malformed position")
	}
	testutil.AssertEqual(t, pm.PatternCount(), 0, "PatternCount")
}

func TestPositionMatcher_StartingPosition(t *testing.T) {
	pm := NewPositionMatcher()
	testutil.AssertNoError(t, pm.AddFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "start"))

	b := testutil.MustLoadPosition(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	testutil.MustPlay(t, b, "1. Ra7 Kd8")
	if !pm.Match(b) {
		t.Error("starting position of the game not considered")
	}
}

func TestPositionMatcher_AddPattern(t *testing.T) {
	pm := NewPositionMatcher()
	testutil.AssertNoError(t, pm.AddPattern("*/*/*/*/4P3/*/*/*", "e4 pawn", false))

	if !pm.Match(testutil.MustGame(t, "1. e4")) {
		t.Error("pattern did not match a pawn on e4")
	}
	if pm.Match(testutil.MustGame(t, "1. d4 e5")) {
		t.Error("pattern matched without a pawn on e4")
	}

	inverted := NewPositionMatcher()
	testutil.AssertNoError(t, inverted.AddPattern("*/*/*/*/4P3/*/*/*", "e4 pawn", true))
	testutil.AssertEqual(t, inverted.PatternCount(), 2, "PatternCount")
	match := inverted.MatchGame(testutil.MustGame(t, "1. d4 e5"))
	if match == nil || match.Pattern != "*/*/*/4p3/*/*/*/*" {
		t.Errorf("MatchGame() = %+v, want the inverted pattern", match)
	}
}

func TestPositionMatcher_AddPattern_Invalid(t *testing.T) {
	pm := NewPositionMatcher()
	if err := pm.AddPattern("*/*/*", "", false); err == nil {
		t.Error("AddPattern() accepted three ranks")
	}
}

func TestPositionMatcher_Empty(t *testing.T) {
	pm := NewPositionMatcher()
	if pm.MatchGame(engine.NewBoard()) != nil {
		t.Error("empty matcher matched")
	}
}

// --- CompositeMatcher tests ---

func TestCompositeMatcher(t *testing.T) {
	queens, err := NewMaterialMatcher("Q:q", false)
	testutil.AssertNoError(t, err)
	e4 := NewPositionMatcher()
	testutil.AssertNoError(t, e4.AddPattern("*/*/*/*/4P3/*/*/*", "", false))

	b := testutil.MustGame(t, "1. d4 d5")

	tests := []struct {
		name string
		cm   *CompositeMatcher
		want bool
	}{
		{"empty all", NewCompositeMatcher(MatchAll), true},
		{"empty any", NewCompositeMatcher(MatchAny), false},
		{"all", NewCompositeMatcher(MatchAll, queens, e4), false},
		{"any", NewCompositeMatcher(MatchAny, queens, e4), true},
		{"any none", NewCompositeMatcher(MatchAny, e4), false},
		{"all one", NewCompositeMatcher(MatchAll, queens), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.cm.Match(b), tt.want, "Match")
		})
	}

	cm := NewCompositeMatcher(MatchAny)
	cm.Add(queens)
	testutil.AssertEqual(t, cm.Len(), 1, "Len")
	testutil.AssertEqual(t, cm.Name(), "CompositeMatcher(OR: MaterialMatcher(Q:q))", "Name")
}
