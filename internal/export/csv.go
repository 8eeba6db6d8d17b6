// Package export renders derived ledgers for download.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/agentcash/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// header is the first CSV line.
var header = []string{"date", "time", "kind", "reference", "note", "cashIn", "cashOut", "balance"}

// CSV renders the snapshot as a CSV document with amounts formatted for
// the locale, e.g. "503.000" for Indonesian.
func CSV(snapshot ledger.Snapshot, tag language.Tag) ([]byte, error) {
	printer := message.NewPrinter(tag)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range snapshot.Rows {
		record := []string{
			row.Date.String(),
			row.Time.String(),
			string(row.Kind),
			row.Reference,
			row.Note,
			format(printer, row.CashIn),
			format(printer, row.CashOut),
			format(printer, row.RunningBalance),
		}

		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func format(p *message.Printer, d decimal.Decimal) string {
	f, _ := d.Float64()
	return p.Sprint(number.Decimal(f))
}
