package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds a balance and an append-only transaction history. At most
// one card is linked at a time; linking a new card replaces the old one.
type Account struct {
	ID            uuid.UUID
	AccountNumber string

	balance      decimal.Decimal
	card         *Card
	transactions []TransactionRecord
}

// NewAccount creates an empty account with the given account number.
func NewAccount(accountNumber string) *Account {
	return &Account{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		balance:       decimal.Zero,
	}
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// LinkCard links a card to the account, replacing any previously linked card.
func (a *Account) LinkCard(card Card) {
	a.card = &card
}

// HasCard reports whether the linked card matches the given credentials.
// An account with no linked card matches nothing.
func (a *Account) HasCard(number, password string) bool {
	return a.card != nil && a.card.Number == number && a.card.Password == password
}

// Credit adds amount to the balance. Non-positive amounts are rejected.
func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit subtracts amount from the balance. Non-positive amounts and amounts
// exceeding the balance are rejected, leaving the balance unchanged. The
// balance never goes negative.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// AddTransaction appends a record to the account history.
func (a *Account) AddTransaction(record TransactionRecord) {
	a.transactions = append(a.transactions, record)
}

// Transactions returns a copy of the history in chronological order.
// Mutating the returned slice does not affect the account.
func (a *Account) Transactions() []TransactionRecord {
	out := make([]TransactionRecord, len(a.transactions))
	copy(out, a.transactions)
	return out
}
