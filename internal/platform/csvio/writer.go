package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/payments-replay-engine/internal/engine"
)

// outputHeader is the column layout of the projected account output.
var outputHeader = []string{"client", "available", "held", "total", "locked"}

// WriteStatements encodes the projected account statements as CSV.
// Decimal fields are rendered at full precision; no rounding is
// applied. Statement order is whatever the projection produced.
func WriteStatements(w io.Writer, statements []engine.Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(outputHeader); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, st := range statements {
		record := []string{
			strconv.FormatUint(uint64(st.Client), 10),
			st.Available.String(),
			st.Held.String(),
			st.Total.String(),
			strconv.FormatBool(st.Locked),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write account row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
