package csvloader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
	"github.com/custodia-labs/docrec/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Columns names the header fields the loader reads. Size and Path are optional;
// the others must be present.
type Columns struct {
	ID   string
	Type string
	Text string
	Size string
	Path string
}

// ColumnsFromSettings returns the column names configured in settings.
func ColumnsFromSettings(s domain.CorpusSettings) Columns {
	return Columns{
		ID:   s.IDColumn,
		Type: s.TypeColumn,
		Text: s.TextColumn,
		Size: s.SizeColumn,
		Path: s.PathColumn,
	}
}

// Loader reads documents from a CSV file.
type Loader struct {
	path    string
	columns Columns
	// requireType is false for snippet tables, which only need ID and text.
	requireType bool
}

// New creates a loader for the document table at path.
func New(path string, columns Columns) *Loader {
	return &Loader{path: path, columns: columns, requireType: true}
}

// NewSnippetLoader creates a loader for a table that only supplies text by ID.
func NewSnippetLoader(path string, columns Columns) *Loader {
	return &Loader{path: path, columns: columns}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load reads every row in file order. Rows are rejected if required fields
// are missing or an ID repeats.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
	}
	defer f.Close()

	return l.read(ctx, f)
}

func (l *Loader) read(ctx context.Context, r io.Reader) ([]domain.Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrDataLoad, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %v", domain.ErrDataLoad, l.path, err)
	}

	cols, err := l.resolve(header)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0)
	seen := make(map[string]int)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDataLoad, l.path, err)
		}
		// Physical line the record starts on; quoted fields may span lines.
		line, _ := reader.FieldPos(0)

		doc := domain.Document{
			ID:       field(record, cols.id),
			Type:     field(record, cols.typ),
			Text:     field(record, cols.text),
			FileSize: field(record, cols.size),
			FilePath: field(record, cols.path),
		}
		if doc.ID == "" {
			return nil, fmt.Errorf("%w: %s line %d: empty %s", domain.ErrDataLoad, l.path, line, l.columns.ID)
		}
		if first, dup := seen[doc.ID]; dup {
			return nil, fmt.Errorf("%w: %s line %d: duplicate id %q (first on line %d)",
				domain.ErrDataLoad, l.path, line, doc.ID, first)
		}
		seen[doc.ID] = line

		docs = append(docs, doc)
	}

	logger.Debug("Read %d rows from %s", len(docs), l.path)
	return docs, nil
}

// columnIndex holds header positions; -1 means absent.
type columnIndex struct {
	id, typ, text, size, path int
}

func (l *Loader) resolve(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}
	find := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := positions[name]; ok {
			return i
		}
		return -1
	}

	cols := columnIndex{
		id:   find(l.columns.ID),
		typ:  find(l.columns.Type),
		text: find(l.columns.Text),
		size: find(l.columns.Size),
		path: find(l.columns.Path),
	}

	var missing []string
	if cols.id < 0 {
		missing = append(missing, l.columns.ID)
	}
	if cols.text < 0 {
		missing = append(missing, l.columns.Text)
	}
	if l.requireType && cols.typ < 0 {
		missing = append(missing, l.columns.Type)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s has no column %s", domain.ErrDataLoad, l.path, strings.Join(missing, ", "))
	}
	return cols, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
