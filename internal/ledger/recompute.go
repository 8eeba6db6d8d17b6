package ledger

import (
	"github.com/agentcash/backend/internal/models"
	"github.com/agentcash/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Row is a transaction annotated with its effect on the cash drawer and
// the drawer balance after applying it.
type Row struct {
	models.Transaction
	CashIn         decimal.Decimal `json:"cashIn"`         // Cash moving into the drawer
	CashOut        decimal.Decimal `json:"cashOut"`        // Cash moving out of the drawer
	RunningBalance decimal.Decimal `json:"runningBalance"` // Drawer balance after this row
}

// Snapshot is the fully derived ledger for one owner. It is ephemeral:
// it is rebuilt from scratch on every change notification and never
// persisted.
type Snapshot struct {
	Rows          []Row           `json:"rows"`          // All transactions in chronological order
	FinalBalance  decimal.Decimal `json:"finalBalance"`  // Drawer balance after the last row
	TodayFeeTotal decimal.Decimal `json:"todayFeeTotal"` // Sum of fees collected on the reference date
	Today         types.Date      `json:"today"`         // The reference date the fee total was computed for
}

// Recompute derives the full ledger from an unordered set of transactions.
//
// Rows are ordered by (date, time, createdAt) ascending. The createdAt
// tiebreaker keeps the order deterministic when two records share a date
// and time. All records participate in the running balance regardless of
// their date; only the fee aggregate is filtered to the reference date.
func Recompute(records []models.Transaction, today types.Date) Snapshot {
	sorted := make([]models.Transaction, len(records))
	copy(sorted, records)

	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	snapshot := Snapshot{
		Rows:          make([]Row, 0, len(sorted)),
		FinalBalance:  decimal.Zero,
		TodayFeeTotal: decimal.Zero,
		Today:         today,
	}

	balance := decimal.Zero
	for _, t := range sorted {
		cashIn, cashOut := Classify(t.Kind, t.Amount, t.Fee)
		balance = balance.Add(cashIn).Sub(cashOut)

		snapshot.Rows = append(snapshot.Rows, Row{
			Transaction:    t,
			CashIn:         cashIn,
			CashOut:        cashOut,
			RunningBalance: balance,
		})

		if t.Date.Equal(today) {
			snapshot.TodayFeeTotal = snapshot.TodayFeeTotal.Add(t.Fee)
		}
	}

	snapshot.FinalBalance = balance
	return snapshot
}

// Unclassified returns the number of rows whose kind is not recognized.
// Those rows carry no cash flow; a non-zero count is a data quality
// signal, not an error.
func (s Snapshot) Unclassified() int {
	var n int
	for _, row := range s.Rows {
		if !row.Kind.Valid() {
			n++
		}
	}
	return n
}
