// Package csvio is the CSV boundary around the engine: it decodes
// transaction events from an input stream and encodes the projected
// account statements back out. Malformed rows are reported as warnings
// and skipped; the engine never sees them.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/payments-replay-engine/internal/domain/shared"
)

var (
	// ErrMissingColumn indicates the header row lacks a required column.
	ErrMissingColumn = errors.New("input header missing required column")

	errUnknownEventType = errors.New("unknown event type")
)

// columns maps header names to field positions for one input file.
// The amount column may be absent entirely when the file contains only
// dispute-family events.
type columns struct {
	eventType int
	client    int
	tx        int
	amount    int // -1 when the column is not present
}

// Stats summarizes one decoding pass.
type Stats struct {
	Events  int // rows decoded and handed to the handler
	Skipped int // malformed rows reported and dropped
}

// Reader decodes transaction events from CSV input. Column order is
// taken from the header row; surrounding whitespace is trimmed from
// every field.
type Reader struct {
	csv    *csv.Reader
	logger *slog.Logger
}

// NewReader creates a Reader over r, reporting skipped rows to logger.
func NewReader(r io.Reader, logger *slog.Logger) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	return &Reader{
		csv:    cr,
		logger: logger,
	}
}

// ReadAll decodes every row and passes each valid event to handle, in
// input order. A malformed row is logged as a warning and skipped; one
// bad row never aborts the rows after it. Only unreadable input (bad
// header, I/O failure) returns an error.
func (r *Reader) ReadAll(handle func(shared.Event)) (Stats, error) {
	var stats Stats

	header, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			// Empty input: nothing to replay, nothing to report.
			return stats, nil
		}
		return stats, fmt.Errorf("failed to read input header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return stats, err
	}

	for line := 2; ; line++ {
		record, err := r.csv.Read()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.logger.Warn("skipping malformed row", "line", line, "error", err)
				stats.Skipped++
				continue
			}
			return stats, fmt.Errorf("failed to read input: %w", err)
		}

		ev, err := decodeEvent(record, cols)
		if err != nil {
			r.logger.Warn("skipping malformed row", "line", line, "error", err)
			stats.Skipped++
			continue
		}

		handle(ev)
		stats.Events++
	}
}

// resolveColumns maps the header row to field positions. The type,
// client and tx columns are required; amount is optional.
func resolveColumns(header []string) (columns, error) {
	cols := columns{eventType: -1, client: -1, tx: -1, amount: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "type":
			cols.eventType = i
		case "client":
			cols.client = i
		case "tx":
			cols.tx = i
		case "amount":
			cols.amount = i
		}
	}

	switch {
	case cols.eventType < 0:
		return cols, fmt.Errorf("%w: type", ErrMissingColumn)
	case cols.client < 0:
		return cols, fmt.Errorf("%w: client", ErrMissingColumn)
	case cols.tx < 0:
		return cols, fmt.Errorf("%w: tx", ErrMissingColumn)
	}
	return cols, nil
}

// decodeEvent parses one CSV record into a validated event.
func decodeEvent(record []string, cols columns) (shared.Event, error) {
	var ev shared.Event

	kind := shared.EventType(strings.ToLower(strings.TrimSpace(record[cols.eventType])))
	if !kind.Valid() {
		return ev, fmt.Errorf("%w: %q", errUnknownEventType, record[cols.eventType])
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[cols.client]), 10, 16)
	if err != nil {
		return ev, fmt.Errorf("invalid client ID: %w", err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(record[cols.tx]), 10, 32)
	if err != nil {
		return ev, fmt.Errorf("invalid tx ID: %w", err)
	}

	ev.Type = kind
	ev.Client = uint16(client)
	ev.Tx = uint32(tx)

	if cols.amount >= 0 && cols.amount < len(record) {
		raw := strings.TrimSpace(record[cols.amount])
		if raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return ev, fmt.Errorf("invalid amount: %w", err)
			}
			ev.Amount = decimal.NullDecimal{Decimal: amount, Valid: true}
		}
	}

	return ev, nil
}
