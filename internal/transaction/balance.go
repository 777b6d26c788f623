package transaction

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-simulator/internal/domain"
)

// BalanceInquiry reads the balance without changing it
type BalanceInquiry struct {
	info domain.TransactionRecord
}

// NewBalanceInquiry creates a BalanceInquiry
func NewBalanceInquiry() *BalanceInquiry {
	return &BalanceInquiry{
		info: newRecord(domain.KindBalance, decimal.NullDecimal{}),
	}
}

// Execute implements the Transaction interface. It always succeeds and
// always appends an informational record with no amount.
func (b *BalanceInquiry) Execute(account *domain.Account) bool {
	account.AddTransaction(b.info)
	return true
}

// Info returns the audit record created for this operation.
func (b *BalanceInquiry) Info() domain.TransactionRecord {
	return b.info
}
