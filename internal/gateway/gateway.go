// Package gateway validates and submits new transaction records.
//
// The gateway never touches derived state: after a successful write the
// next store notification refreshes the ledger.
package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentcash/backend/internal/models"
	"github.com/agentcash/backend/internal/store"
	"github.com/agentcash/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDateRequired   = errors.New("the date must be set in YYYY-MM-DD format")
	ErrTimeRequired   = errors.New("the time must be set in HH:MM format")
	ErrKindRequired   = errors.New("the transaction kind must be set")
	ErrKindUnknown    = errors.New("the transaction kind is not recognized")
	ErrAmountNegative = errors.New("amounts and fees must not be negative")
)

// Draft is a candidate transaction as the user entered it.
//
// Amount and Fee are strings on purpose: empty or unparseable input
// defaults to zero instead of rejecting the submission.
type Draft struct {
	Date      string `json:"date" example:"2024-03-01"`          // Business date, required
	Time      string `json:"time" example:"09:30"`               // Clock time, required
	Kind      string `json:"kind" example:"CASH_DEPOSIT"`        // Transaction kind, required
	Reference string `json:"reference" example:"RCPT-0042"`      // Optional external reference
	Amount    string `json:"amount" example:"500000"`            // Principal amount, defaults to zero
	Fee       string `json:"fee" example:"3000"`                 // Administrative fee, defaults to zero
	Note      string `json:"note" example:"Deposit for Mrs. S."` // Optional note
}

// Submit validates the draft and writes exactly one new record to the
// store. On any validation or store error, nothing is written.
func Submit(s store.RecordStore, ownerID string, draft Draft) (uuid.UUID, error) {
	record, err := draft.record()
	if err != nil {
		return uuid.Nil, err
	}

	return s.Insert(ownerID, record)
}

// record validates the draft and converts it into a model.
func (d Draft) record() (models.Transaction, error) {
	if strings.TrimSpace(d.Date) == "" {
		return models.Transaction{}, ErrDateRequired
	}

	date, err := types.ParseDate(strings.TrimSpace(d.Date))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrDateRequired, d.Date)
	}

	if strings.TrimSpace(d.Time) == "" {
		return models.Transaction{}, ErrTimeRequired
	}

	clock, err := types.ParseClock(strings.TrimSpace(d.Time))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrTimeRequired, d.Time)
	}

	kind := models.Kind(strings.TrimSpace(d.Kind))
	if kind == "" {
		return models.Transaction{}, ErrKindRequired
	}
	if !kind.Valid() {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrKindUnknown, kind)
	}

	amount, err := parseAmount(d.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	fee, err := parseAmount(d.Fee)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Date:      date,
		Time:      clock,
		Kind:      kind,
		Reference: d.Reference,
		Amount:    amount,
		Fee:       fee,
		Note:      d.Note,
	}, nil
}

// parseAmount parses a numeric field leniently: empty or unparseable
// input becomes zero. Negative values are the one thing rejected, since
// silently flipping the drawer balance would be worse than an error.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, nil
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrAmountNegative, s)
	}

	return d, nil
}
