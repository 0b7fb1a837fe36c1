// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/eco"
	"github.com/lgbarn/chessrules-go/internal/matching"
)

var (
	// Configuration
	configFile = flag.String("config", "", "TOML configuration file")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")

	// Position and moves
	startFEN  = flag.String("fen", "", "Start position (default: standard initial position)")
	moveList  = flag.String("moves", "", "Move list to play, e.g. \"1. e4 e5 2. Nf3\"")
	undoPlies = flag.Int("undo", 0, "Take back N plies after playing the moves")
	legalFrom = flag.String("legal", "", "List the legal moves from a square, or \"all\"")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "", "Output format: text, json")

	// Batch checking
	checkOnly = flag.Bool("check", false, "Only validate the inputs, one move list per file")
	workers   = flag.Int("workers", 0, "Worker goroutines for -check (0 = one per CPU)")
	findDups  = flag.Bool("D", false, "With -check, report inputs ending in a position an earlier input reached")
	exactDups = flag.Bool("exact", false, "With -D, duplicates must also have the same number of plies")
	analyse   = flag.Bool("analyse", false, "With -check, append checks, captures, promotions and material balance")
	classify  = flag.Bool("e", false, "With -check, append the ECO opening classification")
	ecoFile   = flag.String("ecofile", "", "Opening book for -e (default: built-in book)")

	// Game selection
	materialPattern = flag.String("material", "", "Select games reaching this material, e.g. \"QR:qrr\"")
	exactMaterial   = flag.Bool("exactmaterial", false, "With -material, the material must match exactly")
	positionFEN     = flag.String("position", "", "Select games reaching this exact position")
	placement       = flag.String("pattern", "", "Select games reaching a placement pattern with wildcards ? ! * A a _")
	invertPattern   = flag.Bool("invert", false, "With -pattern, also match the colour-reversed pattern")

	// Archive
	archiveDir = flag.String("archive", "", "Game archive directory")
	archiveMem = flag.Bool("archive-mem", false, "Use an in-memory archive")
	saveName   = flag.String("save", "", "Save the game to the archive under this name")
	loadName   = flag.String("load", "", "Start from a game stored in the archive")
	deleteName = flag.String("delete", "", "Delete a game from the archive")
	listGames  = flag.Bool("list", false, "List the games in the archive")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// loadConfig builds the configuration from the optional file and the
// command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}
	cfg = applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags returns a copy of cfg with every flag that was set applied.
func applyFlags(cfg *config.Config) *config.Config {
	b := config.From(cfg)
	if *startFEN != "" {
		b.WithStartFEN(*startFEN)
	}
	if *workers > 0 {
		b.WithWorkers(*workers)
	}
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
	if *outputFormat != "" {
		b.WithOutputFormat(*outputFormat)
	}
	if *outputFile != "" {
		b.WithOutputFile(*outputFile)
	}
	switch {
	case *archiveDir != "":
		b.WithArchiveDir(*archiveDir)
	case *archiveMem:
		b.WithInMemoryArchive()
	}
	return b.Build()
}

// buildMatcher combines the game selection flags. It returns nil when no
// criteria are set.
func buildMatcher() (matching.GameMatcher, error) {
	all := matching.NewCompositeMatcher(matching.MatchAll)

	if *materialPattern != "" {
		mm, err := matching.NewMaterialMatcher(*materialPattern, *exactMaterial)
		if err != nil {
			return nil, err
		}
		all.Add(mm)
	}

	if *positionFEN != "" || *placement != "" {
		pm := matching.NewPositionMatcher()
		if *positionFEN != "" {
			if err := pm.AddFEN(*positionFEN, "position"); err != nil {
				return nil, err
			}
		}
		if *placement != "" {
			if err := pm.AddPattern(*placement, "pattern", *invertPattern); err != nil {
				return nil, err
			}
		}
		all.Add(pm)
	}

	if all.Len() == 0 {
		return nil, nil
	}
	return all, nil
}

// loadClassifier returns the opening classifier for -e, or nil when
// classification is off.
func loadClassifier() (*eco.ECOClassifier, error) {
	if !*classify {
		return nil, nil
	}
	if *ecoFile == "" {
		return eco.Default()
	}
	ec := eco.NewECOClassifier()
	if err := ec.LoadFromFile(*ecoFile); err != nil {
		return nil, err
	}
	return ec, nil
}
