// Package ledger derives the cash drawer ledger from a set of transactions.
//
// Everything in this package is pure: the same inputs always produce the
// same outputs, there is no I/O and no failure mode. Malformed input is
// normalized to zero instead of rejected so that a single bad record can
// never corrupt the running balance in the wrong direction.
package ledger

import (
	"github.com/agentcash/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Classify maps a transaction's kind and amounts to its effect on the
// agent's cash drawer.
//
// For agent mediated services (transfer, bill payments, airtime and data)
// the principal moves between the customer and the payment network, not
// through the drawer, so only the fee counts as cash in. Deposits and
// withdrawals move principal plus fee through the drawer. Operating
// expenses reduce the drawer by their amount.
//
// Unrecognized kinds are inert: they classify as zero cash flow and stay
// visible in the ledger listing.
func Classify(kind models.Kind, amount, fee decimal.Decimal) (cashIn, cashOut decimal.Decimal) {
	// Amounts are non-negative by contract, but records can come from
	// other writers. Clamp instead of trusting.
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	if fee.IsNegative() {
		fee = decimal.Zero
	}

	switch kind {
	case models.KindCashDeposit:
		return amount.Add(fee), decimal.Zero
	case models.KindCashWithdrawal:
		return decimal.Zero, amount.Add(fee)
	case models.KindTransfer, models.KindPLN, models.KindPDAM, models.KindBPJS, models.KindAirtime, models.KindDataPackage:
		return fee, decimal.Zero
	case models.KindOperatingExpense:
		return decimal.Zero, amount
	}

	return decimal.Zero, decimal.Zero
}
