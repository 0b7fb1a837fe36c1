package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameWriter is the interface for writing boards' histories to output.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes a single named game to the output.
	WriteGame(name string, b *engine.Board) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for a format name: "text" or "json".
func NewGameWriter(format string, w io.Writer) (GameWriter, error) {
	switch format {
	case "", "text":
		return NewTextWriter(w), nil
	case "json":
		return NewJSONWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// TextWriter writes games as numbered move lists.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteGame writes a header line naming the game followed by its moves.
func (tw *TextWriter) WriteGame(name string, b *engine.Board) error {
	if name != "" {
		if _, err := fmt.Fprintf(tw.w, "; %s\n", name); err != nil {
			return err
		}
	}
	if err := WriteMoveList(tw.w, b); err != nil {
		return err
	}
	// Blank line between games
	_, err := fmt.Fprintln(tw.w)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame converts the game immediately and buffers it for output, so
// later changes to b do not affect what is written.
func (jw *JSONWriter) WriteGame(name string, b *engine.Board) error {
	jg, err := GameToJSON(b)
	if err != nil {
		return err
	}
	jg.Name = name
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
