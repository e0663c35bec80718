package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/okian/chefcontest/internal/domain/model"
	"github.com/okian/chefcontest/pkg/logger"
	"github.com/okian/chefcontest/pkg/metrics"
)

const defaultFileMode = 0o644

// CSV is a Store backed by a single CSV file.
type CSV struct {
	path   string
	mode   os.FileMode
	now    func() time.Time
	logger logger.Logger

	mu sync.Mutex
}

var _ Store = (*CSV)(nil)

// NewCSV returns a ledger stored at path. The file is created on first append.
func NewCSV(path string, opts ...Option) *CSV {
	l := &CSV{
		path:   path,
		mode:   defaultFileMode,
		now:    time.Now,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the backing file path.
func (l *CSV) Path() string { return l.path }

// Append writes one row per entry. The header is written first when the file
// is new (or empty). Entries without a Date get today's date, and text is
// stored in its Canonical form since CSV readers fold CRLF to LF. The file is
// open only for the duration of the call, and any write, flush or close
// failure is returned wrapped in ErrWrite.
func (l *CSV) Append(ctx context.Context, entries ...model.ContestEntry) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if len(entries) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	defer func() {
		metrics.RecordLedgerLatency("append", float64(time.Since(start).Milliseconds()))
		if err != nil {
			metrics.RecordLedgerAppendError()
			l.logger.Error(ctx, "ledger append failed", logger.String("path", l.path), logger.Error(err))
			return
		}
		metrics.RecordLedgerAppend(len(entries))
	}()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, l.mode)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrWrite, l.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrWrite, l.path, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %w", ErrWrite, l.path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header()); err != nil {
			return fmt.Errorf("%w: header: %w", ErrWrite, err)
		}
	}

	today := l.now().Format(model.DateLayout)
	for _, e := range entries {
		if e.Date == "" {
			e.Date = today
		}
		if err := w.Write(toRecord(e)); err != nil {
			return fmt.Errorf("%w: row for %q: %w", ErrWrite, e.ChefName, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", ErrWrite, l.path, err)
	}
	return nil
}

// Load reads every row into a table with the canonical columns. A missing
// file yields an empty table and no error. Any other failure yields an
// empty table and an error wrapping ErrRead.
//
// Columns are resolved by header name, so ledgers written with the older
// four-column header load with empty Ingredients and Date.
func (l *CSV) Load(ctx context.Context) (model.Table, error) {
	empty := model.Table{Columns: Header()}
	if err := ctx.Err(); err != nil {
		return empty, fmt.Errorf("%w: %w", ErrRead, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	defer func() {
		metrics.RecordLedgerLatency("load", float64(time.Since(start).Milliseconds()))
	}()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		metrics.UpdateLedgerRows(0)
		return empty, nil
	}
	if err != nil {
		metrics.RecordLedgerReadError()
		return empty, fmt.Errorf("%w: open %s: %w", ErrRead, l.path, err)
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		metrics.RecordLedgerReadError()
		return empty, fmt.Errorf("%w: %s: %w", ErrRead, l.path, err)
	}
	metrics.UpdateLedgerRows(len(rows))
	return model.Table{Columns: Header(), Rows: rows}, nil
}

func readRows(r io.Reader) ([]model.ContestEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols[ColChefName]; !ok {
		return nil, fmt.Errorf("header %q lacks %q", header, ColChefName)
	}

	var rows []model.ContestEntry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, fromRecord(rec, cols))
	}
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		// Tolerate a UTF-8 BOM written by spreadsheet tools.
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func toRecord(e model.ContestEntry) []string {
	e = e.Canonical()
	return []string{e.ChefName, e.RecipeName, strconv.Itoa(e.Score), e.Reason, e.Ingredients, e.Date}
}

func fromRecord(rec []string, cols map[string]int) model.ContestEntry {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	return model.ContestEntry{
		ChefName:    field(ColChefName),
		RecipeName:  field(ColRecipeName),
		Score:       parseScore(field(ColScore)),
		Reason:      field(ColReason),
		Ingredients: field(ColIngredients),
		Date:        field(ColDate),
	}
}

// parseScore reads integer cells and float cells such as "7.0"; anything
// else, including floats beyond the int range, is 0.
func parseScore(cell string) int {
	cell = strings.TrimSpace(cell)
	if n, err := strconv.Atoi(cell); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || !(f >= float64(math.MinInt) && f < -float64(math.MinInt)) {
		return 0
	}
	return int(f)
}
