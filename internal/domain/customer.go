package domain

import "github.com/google/uuid"

// Customer is a bank client owning one or more accounts. Each account
// belongs to exactly one customer.
type Customer struct {
	ID      uuid.UUID
	Name    string
	Address string
	Phone   string
	Email   string

	accounts []*Account
}

// NewCustomer creates a customer with no accounts.
func NewCustomer(name, address, phone, email string) *Customer {
	return &Customer{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
		Phone:   phone,
		Email:   email,
	}
}

// AddAccount adds an account to the customer.
func (c *Customer) AddAccount(account *Account) {
	c.accounts = append(c.accounts, account)
}

// FindAccount scans the customer's accounts in insertion order and returns
// the first one whose linked card matches the credentials. A miss is a
// normal outcome, not an error.
func (c *Customer) FindAccount(cardNumber, password string) (*Account, bool) {
	for _, account := range c.accounts {
		if account.HasCard(cardNumber, password) {
			return account, true
		}
	}
	return nil, false
}
