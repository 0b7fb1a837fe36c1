// chessrules plays move lists through a chess rules engine, validates them
// and exports the resulting games.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessrules: %v\n", err)
		os.Exit(2)
	}
	setupLogger(cfg, os.Stderr)

	out, closeOut, err := openOutput(cfg)
	if err != nil {
		slog.Error("cannot open output", "file", cfg.Output.File, "err", err)
		os.Exit(2)
	}
	status := run(cfg, flag.Args(), os.Stdin, out)
	if err := closeOut(); err != nil {
		slog.Error("closing output", "err", err)
		status = 2
	}
	os.Exit(status)
}

// setupLogger installs a text handler at the configured level as the
// default logger.
func setupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// openOutput returns the configured output and a function closing it.
func openOutput(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.Output.File == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(cfg.Output.File)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessrules - play, validate and export chess move lists

Usage: chessrules [options] [file...]

Each file holds one move list such as "1. e4 e5 2. Nf3 Nc6". Without files
or -moves the move list is read from standard input.

Options:
`)
	flag.PrintDefaults()
}
