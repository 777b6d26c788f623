package domain_test

import (
	"testing"

	"github.com/tirasundara/atm-simulator/internal/domain"
)

func sampleBank() *domain.Bank {
	bank := domain.NewBank("MyBank", "MYBK1234")

	customer := domain.NewCustomer("John Doe", "123 Main St", "555-1234", "john@example.com")
	account := domain.NewAccount("ACC123")
	account.LinkCard(domain.Card{Number: "CARD123", Password: "1234"})
	customer.AddAccount(account)
	bank.AddCustomer(customer)

	return bank
}

func TestAuthenticate(t *testing.T) {
	bank := sampleBank()

	account, ok := bank.Authenticate("CARD123", "1234")
	if !ok {
		t.Fatalf("Expected authentication to succeed for CARD123/1234")
	}
	if account.AccountNumber != "ACC123" {
		t.Errorf("Expected account ACC123, got %s", account.AccountNumber)
	}

	if _, ok := bank.Authenticate("CARD123", "wrong"); ok {
		t.Errorf("Expected authentication to fail with wrong password")
	}
	if _, ok := bank.Authenticate("UNKNOWN", "1234"); ok {
		t.Errorf("Expected authentication to fail for unknown card")
	}
}

func TestAuthenticateFirstMatchWins(t *testing.T) {
	bank := domain.NewBank("MyBank", "MYBK1234")

	// Two accounts sharing the same credentials across two customers.
	// Nothing enforces uniqueness; insertion order decides.
	first := domain.NewCustomer("Jane Roe", "9 High St", "555-0001", "jane@example.com")
	firstAccount := domain.NewAccount("ACC001")
	firstAccount.LinkCard(domain.Card{Number: "CARD777", Password: "0000"})
	first.AddAccount(firstAccount)
	bank.AddCustomer(first)

	second := domain.NewCustomer("John Doe", "123 Main St", "555-1234", "john@example.com")
	secondAccount := domain.NewAccount("ACC002")
	secondAccount.LinkCard(domain.Card{Number: "CARD777", Password: "0000"})
	second.AddAccount(secondAccount)
	bank.AddCustomer(second)

	account, ok := bank.Authenticate("CARD777", "0000")
	if !ok {
		t.Fatalf("Expected authentication to succeed")
	}
	if account.AccountNumber != "ACC001" {
		t.Errorf("Expected first inserted account ACC001 to win, got %s", account.AccountNumber)
	}
}

func TestFindAccount(t *testing.T) {
	customer := domain.NewCustomer("John Doe", "123 Main St", "555-1234", "john@example.com")

	account := domain.NewAccount("ACC123")
	account.LinkCard(domain.Card{Number: "CARD123", Password: "1234"})
	customer.AddAccount(account)

	found, ok := customer.FindAccount("CARD123", "1234")
	if !ok {
		t.Fatalf("Expected to find account for CARD123/1234")
	}
	if found.AccountNumber != "ACC123" {
		t.Errorf("Expected account ACC123, got %s", found.AccountNumber)
	}

	if _, ok := customer.FindAccount("CARD123", "wrong"); ok {
		t.Errorf("Expected no account for wrong password")
	}
}
