package domain

// Bank is the root registry of customers and performs credential-based
// account lookup. The whole graph lives in memory for the process lifetime.
type Bank struct {
	Name      string
	SwiftCode string

	customers []*Customer
}

// NewBank creates a bank with no customers.
func NewBank(name, swiftCode string) *Bank {
	return &Bank{
		Name:      name,
		SwiftCode: swiftCode,
	}
}

// AddCustomer adds a customer to the bank.
func (b *Bank) AddCustomer(customer *Customer) {
	b.customers = append(b.customers, customer)
}

// Authenticate scans customers in insertion order, delegating to
// FindAccount, and returns the first account matching the credentials.
// Nothing prevents two accounts from sharing credentials; the first match
// wins.
func (b *Bank) Authenticate(cardNumber, password string) (*Account, bool) {
	for _, customer := range b.customers {
		if account, ok := customer.FindAccount(cardNumber, password); ok {
			return account, true
		}
	}
	return nil, false
}
