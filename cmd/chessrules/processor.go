// processor.go - Input handling, game processing and archive commands
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/eco"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/matching"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/parser"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/storage"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Exit statuses.
const (
	exitOK     = 0
	exitFailed = 1 // at least one input was rejected
	exitUsage  = 2
)

// Input names for move lists that do not come from a file.
const (
	stdinName  = "stdin"
	inlineName = "moves"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg     *config.Config
	out     io.Writer
	archive *storage.Archive
	matcher matching.GameMatcher
	logger  *slog.Logger
}

// run executes one invocation and returns the exit status.
func run(cfg *config.Config, args []string, stdin io.Reader, out io.Writer) int {
	ctx := &ProcessingContext{
		cfg:    cfg,
		out:    out,
		logger: slog.Default().With("component", "cli"),
	}

	if cfg.Archive.Enabled() {
		archive, err := openArchive(cfg.Archive)
		if err != nil {
			ctx.logger.Error("cannot open archive", "err", err)
			return exitUsage
		}
		defer archive.Close()
		ctx.archive = archive
	}

	matcher, err := buildMatcher()
	if err != nil {
		ctx.logger.Error("bad match criteria", "err", err)
		return exitUsage
	}
	ctx.matcher = matcher

	needArchive := *listGames || *deleteName != "" || *saveName != "" || *loadName != ""
	if needArchive && ctx.archive == nil {
		ctx.logger.Error("archive commands need -archive or -archive-mem")
		return exitUsage
	}

	switch {
	case *listGames:
		return ctx.listArchive()
	case *deleteName != "":
		return ctx.deleteGame(*deleteName)
	}

	items, err := readInputs(args, stdin, *loadName != "")
	if err != nil {
		ctx.logger.Error("cannot read input", "err", err)
		return exitUsage
	}

	if *checkOnly {
		return ctx.checkAll(items)
	}
	return ctx.processAll(items)
}

// openArchive opens the configured archive.
func openArchive(ac config.ArchiveConfig) (*storage.Archive, error) {
	if ac.InMemory {
		return storage.OpenInMemory()
	}
	return storage.Open(ac.Dir)
}

// readInputs collects the move lists to process: the -moves flag, then
// each named file. Standard input is read only when neither is given and
// no archived game is being loaded.
func readInputs(args []string, stdin io.Reader, fromArchive bool) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	add := func(name, text string) {
		items = append(items, worker.WorkItem{Index: len(items), Name: name, Text: text})
	}

	if *moveList != "" {
		add(inlineName, *moveList)
	}
	for _, path := range args {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-specified input file
		if err != nil {
			return nil, err
		}
		add(filepath.Base(path), string(data))
	}

	if len(items) == 0 {
		if fromArchive {
			add(*loadName, "")
			return items, nil
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		add(stdinName, string(data))
	}
	return items, nil
}

// checkAll validates every item on the worker pool and reports one line
// per input.
func (ctx *ProcessingContext) checkAll(items []worker.WorkItem) int {
	n := ctx.cfg.WorkerCount()
	ctx.logger.Debug("checking move lists", "inputs", len(items), "workers", n)

	classifier, err := loadClassifier()
	if err != nil {
		ctx.logger.Error("cannot load opening book", "err", err)
		return exitUsage
	}

	var detector *hashing.DuplicateDetector
	if *findDups {
		detector = hashing.NewDuplicateDetector(*exactDups)
	}

	status := exitOK
	for _, r := range worker.Run(items, n, worker.CheckMoveLists(ctx.cfg.StartFEN)) {
		if r.Err != nil {
			ctx.logger.Warn("move list rejected", "input", r.Name, "err", r.Err)
			fmt.Fprintf(ctx.out, "%s: error: %v\n", r.Name, r.Err)
			status = exitFailed
			continue
		}
		if !ctx.selected(r.Name, r.Board) {
			continue
		}
		line := fmt.Sprintf("%s: ok, %d plies, %s", r.Name, r.Board.MoveCount(), r.Board.FEN())
		if *analyse {
			analysis, err := processing.AnalyzeGame(r.Board)
			if err != nil {
				ctx.logger.Error("analysis failed", "input", r.Name, "err", err)
				fmt.Fprintf(ctx.out, "%s: error: %v\n", r.Name, err)
				status = exitFailed
				continue
			}
			line += ", " + analysis.Summary()
		}
		if classifier != nil {
			line += ", " + openingName(classifier, r.Board)
		}
		if detector != nil {
			if first, dup := detector.CheckAndAdd(r.Name, r.Board); dup {
				line += ", duplicate of " + first
			}
		}
		fmt.Fprintln(ctx.out, line)
	}

	if detector != nil {
		ctx.logger.Info("duplicate check", "unique", detector.UniqueCount(), "duplicates", detector.DuplicateCount())
	}
	return status
}

// openingName classifies a game, or reports that no opening matched.
func openingName(ec *eco.ECOClassifier, b *engine.Board) string {
	if entry := ec.ClassifyGame(b); entry != nil {
		return entry.String()
	}
	return "unclassified"
}

// processAll plays each item and writes the result in the configured
// format.
func (ctx *ProcessingContext) processAll(items []worker.WorkItem) int {
	if *saveName != "" && len(items) != 1 {
		ctx.logger.Error("-save needs exactly one move list", "inputs", len(items))
		return exitUsage
	}

	gw, err := output.NewGameWriter(ctx.cfg.Output.Format, ctx.out)
	if err != nil {
		ctx.logger.Error("bad output format", "err", err)
		return exitUsage
	}

	status := exitOK
	for _, item := range items {
		b, err := ctx.playGame(item)
		if err != nil {
			ctx.logger.Warn("move list rejected", "input", item.Name, "err", err)
			fmt.Fprintf(ctx.out, "%s: error: %v\n", item.Name, err)
			status = exitFailed
			continue
		}
		if !ctx.selected(item.Name, b) {
			continue
		}

		if *legalFrom != "" {
			if err := ctx.writeLegalMoves(b, *legalFrom); err != nil {
				ctx.logger.Error("cannot list legal moves", "err", err)
				return exitUsage
			}
			continue
		}
		if err := gw.WriteGame(item.Name, b); err != nil {
			ctx.logger.Error("write failed", "input", item.Name, "err", err)
			return exitUsage
		}
		if *saveName != "" {
			if err := ctx.archive.Save(*saveName, storage.RecordFromBoard(*saveName, b)); err != nil {
				ctx.logger.Error("save failed", "name", *saveName, "err", err)
				return exitFailed
			}
			ctx.logger.Info("game saved", "name", *saveName, "plies", b.MoveCount())
		}
	}

	if err := gw.Close(); err != nil {
		ctx.logger.Error("write failed", "err", err)
		return exitUsage
	}
	return status
}

// selected reports whether a played game passes the -material,
// -position and -pattern criteria.
func (ctx *ProcessingContext) selected(name string, b *engine.Board) bool {
	if ctx.matcher == nil || ctx.matcher.Match(b) {
		return true
	}
	ctx.logger.Debug("game not selected", "input", name)
	return false
}

// playGame builds the start board, plays the item onto it and applies
// -undo.
func (ctx *ProcessingContext) playGame(item worker.WorkItem) (*engine.Board, error) {
	b, err := ctx.startBoard()
	if err != nil {
		return nil, err
	}
	if err := parser.ApplyMoveList(b, item.Text); err != nil {
		return nil, err
	}
	if *undoPlies > 0 {
		undone := b.UndoMoves(*undoPlies)
		ctx.logger.Debug("moves taken back", "input", item.Name, "plies", undone)
	}
	return b, nil
}

// startBoard returns the archived game named by -load, or the configured
// start position.
func (ctx *ProcessingContext) startBoard() (*engine.Board, error) {
	if *loadName == "" {
		return ctx.cfg.NewStartBoard()
	}
	rec, err := ctx.archive.Load(*loadName)
	if err != nil {
		return nil, err
	}
	return rec.Replay()
}

// writeLegalMoves prints the legal moves from a square, or every legal
// move for "all", in coordinate form.
func (ctx *ProcessingContext) writeLegalMoves(b *engine.Board, from string) error {
	var moves []chess.Move
	if from == "all" {
		moves = b.GenerateMoves()
	} else {
		sq, err := chess.ParseSquare(from)
		if err != nil {
			return err
		}
		moves = b.LegalMoves(sq)
	}

	ucis := make([]string, len(moves))
	for i, m := range moves {
		ucis[i] = m.UCI()
	}
	_, err := fmt.Fprintf(ctx.out, "legal %s: %s\n", from, strings.Join(ucis, " "))
	return err
}

// listArchive prints the stored game names, one per line.
func (ctx *ProcessingContext) listArchive() int {
	names, err := ctx.archive.List()
	if err != nil {
		ctx.logger.Error("cannot list archive", "err", err)
		return exitFailed
	}
	for _, name := range names {
		fmt.Fprintln(ctx.out, name)
	}
	return exitOK
}

// deleteGame removes a stored game.
func (ctx *ProcessingContext) deleteGame(name string) int {
	if err := ctx.archive.Delete(name); err != nil {
		ctx.logger.Error("cannot delete game", "name", name, "err", err)
		return exitFailed
	}
	ctx.logger.Info("game deleted", "name", name)
	return exitOK
}
