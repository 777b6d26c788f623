package domain

import (
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of an executed operation
type TransactionKind string

// Transaction kinds
const (
	KindWithdraw TransactionKind = "Withdraw"
	KindDeposit  TransactionKind = "Deposit"
	KindBalance  TransactionKind = "Balance"
)

// TransactionRecord is an immutable audit entry for one executed operation.
// Amount is unset for balance inquiries.
type TransactionRecord struct {
	ID        int64
	Timestamp time.Time
	Kind      TransactionKind
	Amount    decimal.NullDecimal
}

var transactionSeq int64

// NextTransactionID returns the next value of the process-wide transaction
// ID sequence. IDs are unique and strictly increasing across all accounts
// for the lifetime of the process.
func NextTransactionID() int64 {
	return atomic.AddInt64(&transactionSeq, 1)
}
