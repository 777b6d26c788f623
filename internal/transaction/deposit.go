package transaction

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-simulator/internal/domain"
)

// Deposit adds funds to an account
type Deposit struct {
	info domain.TransactionRecord
}

// NewDeposit creates a Deposit for the given amount
func NewDeposit(amount decimal.Decimal) *Deposit {
	return &Deposit{
		info: newRecord(domain.KindDeposit, decimal.NewNullDecimal(amount)),
	}
}

// Execute implements the Transaction interface. It fails on non-positive
// amounts; a failed deposit is not recorded in the history.
func (d *Deposit) Execute(account *domain.Account) bool {
	if account.Credit(d.info.Amount.Decimal) != nil {
		return false
	}
	account.AddTransaction(d.info)
	return true
}

// Info returns the audit record created for this operation.
func (d *Deposit) Info() domain.TransactionRecord {
	return d.info
}
