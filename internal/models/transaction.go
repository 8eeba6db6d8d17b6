package models

import (
	"strings"

	"github.com/agentcash/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Kind is the kind of a transaction at the counter.
// swagger:enum Kind
type Kind string

const (
	KindCashDeposit      Kind = "CASH_DEPOSIT"      // Customer deposits cash into their account
	KindCashWithdrawal   Kind = "CASH_WITHDRAWAL"   // Customer withdraws cash from their account
	KindTransfer         Kind = "TRANSFER"          // Money transfer to another account
	KindPLN              Kind = "PLN"               // Electricity bill payment
	KindPDAM             Kind = "PDAM"              // Water bill payment
	KindBPJS             Kind = "BPJS"              // Health insurance bill payment
	KindAirtime          Kind = "AIRTIME"           // Mobile airtime purchase
	KindDataPackage      Kind = "DATA_PACKAGE"      // Mobile data package purchase
	KindOperatingExpense Kind = "OPERATING_EXPENSE" // Expense of the agent business itself
)

// Kinds are all recognized transaction kinds.
var Kinds = []Kind{
	KindCashDeposit,
	KindCashWithdrawal,
	KindTransfer,
	KindPLN,
	KindPDAM,
	KindBPJS,
	KindAirtime,
	KindDataPackage,
	KindOperatingExpense,
}

// Valid reports whether the kind is one of the recognized kinds.
// Records with unrecognized kinds stay visible in the ledger, but do
// not affect the cash drawer.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// Transaction represents a single transaction at the agent's counter.
//
// Transactions are append only: they are created once and never
// updated or deleted. Everything else the backend serves is derived
// from the full set of transactions of an owner.
type Transaction struct {
	DefaultModel
	OwnerID   string          `json:"-" gorm:"index"`                          // Identity that owns the ledger this transaction belongs to
	Date      types.Date      `json:"date" example:"2024-03-01"`               // Business date of the transaction
	Time      types.Clock     `json:"time" example:"09:30"`                    // Clock time, used as tiebreaker for ordering on the same date
	Kind      Kind            `json:"kind" example:"CASH_DEPOSIT"`             // Kind of the transaction
	Reference string          `json:"reference" example:"RCPT-0042"`           // Optional external reference, e.g. a receipt number
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`        // Principal amount, semantics depend on the kind
	Fee       decimal.Decimal `json:"fee" gorm:"type:DECIMAL(20,8)"`           // Administrative fee collected by the agent
	Note      string          `json:"note" example:"Deposit for Mrs. Sari"`    // A note
}

// BeforeSave trims whitespace from all strings.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.OwnerID = strings.TrimSpace(t.OwnerID)
	t.Reference = strings.TrimSpace(t.Reference)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}
