package fs

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/pantry"
)

// Output formats understood by Create.
const (
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

var (
	_ pantry.RecipeWriter = (*JSONLWriter)(nil)
	_ pantry.RecipeWriter = (*CSVWriter)(nil)
)

// CSVHeader lists the CSV columns in record field order.
var CSVHeader = []string{
	"pageGenus", "pageFamily", "pageSpecies", "url", "language",
	"recipeName", "cookTime", "ingredients", "instructions",
}

// JSONLWriter writes one JSON object per line.
type JSONLWriter struct {
	buf  *bufio.Writer
	enc  *json.Encoder
	file *AtomicFile
}

// NewJSONLWriter creates a JSONLWriter on w. Close flushes but does not
// close w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{buf: buf, enc: enc}
}

// WriteRecipe encodes r as a single line.
func (w *JSONLWriter) WriteRecipe(_ context.Context, r pantry.Recipe) error {
	return w.enc.Encode(r)
}

// Close flushes buffered output.
func (w *JSONLWriter) Close() error {
	return finish(w.file, w.buf.Flush())
}

// CSVWriter writes a header row followed by one row per recipe.
type CSVWriter struct {
	w      *csv.Writer
	header bool
	file   *AtomicFile
}

// NewCSVWriter creates a CSVWriter on w. Close flushes but does not close w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteRecipe writes r as a row, preceded by the header on first use.
func (w *CSVWriter) WriteRecipe(_ context.Context, r pantry.Recipe) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.w.Write([]string{
		r.PageGenus, r.PageFamily, r.PageSpecies, r.URL, r.Language,
		r.RecipeName, r.CookTime, r.Ingredients, r.Instructions,
	})
}

// Close flushes buffered output. An empty run still produces the header.
func (w *CSVWriter) Close() error {
	if err := w.writeHeader(); err != nil {
		return finish(w.file, err)
	}
	w.w.Flush()
	return finish(w.file, w.w.Error())
}

func (w *CSVWriter) writeHeader() error {
	if w.header {
		return nil
	}
	w.header = true
	return w.w.Write(CSVHeader)
}

// Create opens a recipe sink writing format to the file at path. The file
// replaces any existing one when the writer is closed.
func Create(path, format string) (pantry.RecipeWriter, error) {
	if format != FormatJSONL && format != FormatCSV {
		return nil, pantry.Errorf(pantry.EINVALID, "unknown output format %q", format)
	}
	f, err := CreateAtomic(path)
	if err != nil {
		return nil, err
	}
	if format == FormatCSV {
		w := NewCSVWriter(f)
		w.file = f
		return w, nil
	}
	w := NewJSONLWriter(f)
	w.file = f
	return w, nil
}

// New wraps w in a recipe sink for format.
func New(w io.Writer, format string) (pantry.RecipeWriter, error) {
	switch format {
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatCSV:
		return NewCSVWriter(w), nil
	default:
		return nil, pantry.Errorf(pantry.EINVALID, "unknown output format %q", format)
	}
}

// finish commits f when err is nil and discards it otherwise.
func finish(f *AtomicFile, err error) error {
	if f == nil {
		return err
	}
	if err != nil {
		f.Abort()
		return err
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", f.path, err)
	}
	return nil
}
