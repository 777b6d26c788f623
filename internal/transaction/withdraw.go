package transaction

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-simulator/internal/domain"
)

// Withdraw removes funds from an account
type Withdraw struct {
	info domain.TransactionRecord
}

// NewWithdraw creates a Withdraw for the given amount
func NewWithdraw(amount decimal.Decimal) *Withdraw {
	return &Withdraw{
		info: newRecord(domain.KindWithdraw, decimal.NewNullDecimal(amount)),
	}
}

// Execute implements the Transaction interface. It fails on non-positive
// amounts and on amounts exceeding the balance; a failed withdrawal is not
// recorded in the history.
func (w *Withdraw) Execute(account *domain.Account) bool {
	if account.Debit(w.info.Amount.Decimal) != nil {
		return false
	}
	account.AddTransaction(w.info)
	return true
}

// Info returns the audit record created for this operation.
func (w *Withdraw) Info() domain.TransactionRecord {
	return w.info
}
