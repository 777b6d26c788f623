package transaction

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-simulator/internal/domain"
)

// Transaction is a single executable operation against an account. Execute
// reports whether the operation took effect; a rejected operation leaves
// the account untouched.
type Transaction interface {
	Execute(account *domain.Account) bool
	Info() domain.TransactionRecord
}

// newRecord builds the audit record for an operation at construction time.
// The ID is drawn from the process-wide sequence; whether the record ends up
// in an account's history is decided by Execute.
func newRecord(kind domain.TransactionKind, amount decimal.NullDecimal) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:        domain.NextTransactionID(),
		Timestamp: time.Now(),
		Kind:      kind,
		Amount:    amount,
	}
}
