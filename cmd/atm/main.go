package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-simulator/internal/atm"
	"github.com/tirasundara/atm-simulator/internal/console"
	"github.com/tirasundara/atm-simulator/internal/domain"
	"github.com/tirasundara/atm-simulator/internal/report"
)

func main() {
	// Command-line flags
	var (
		bankName        string
		swiftCode       string
		location        string
		customerName    string
		customerAddress string
		customerPhone   string
		customerEmail   string
		accountNumber   string
		cardNumber      string
		cardPassword    string
		openingBalance  string
		currency        string
		statementFormat string
		prettyPrint     bool
		noClear         bool
	)

	flag.StringVar(&bankName, "bank-name", "MyBank", "Name of the bank")
	flag.StringVar(&swiftCode, "swift-code", "MYBK1234", "SWIFT code of the bank")
	flag.StringVar(&location, "location", "Main Branch", "Location label of this ATM")
	flag.StringVar(&customerName, "customer-name", "John Doe", "Name of the sample customer")
	flag.StringVar(&customerAddress, "customer-address", "123 Main St", "Address of the sample customer")
	flag.StringVar(&customerPhone, "customer-phone", "555-1234", "Phone number of the sample customer")
	flag.StringVar(&customerEmail, "customer-email", "john@example.com", "Email of the sample customer")
	flag.StringVar(&accountNumber, "account-number", "ACC123", "Account number of the sample account")
	flag.StringVar(&cardNumber, "card-number", "CARD123", "Card number linked to the sample account")
	flag.StringVar(&cardPassword, "card-password", "1234", "Password of the linked card")
	flag.StringVar(&openingBalance, "opening-balance", "0", "Opening balance of the sample account")
	flag.StringVar(&currency, "currency", "EGP", "Currency code shown next to amounts")
	flag.StringVar(&statementFormat, "statement-format", "text", "Transaction history format: text or json")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON statements")
	flag.BoolVar(&noClear, "no-clear", false, "Disable clearing the screen between menus")

	flag.Parse()

	// Validate required flags
	if accountNumber == "" {
		exitWithError("Account number is required")
	}
	if cardNumber == "" {
		exitWithError("Card number is required")
	}
	if cardPassword == "" {
		exitWithError("Card password is required")
	}

	balance, err := decimal.NewFromString(openingBalance)
	if err != nil {
		exitWithError(fmt.Sprintf("Invalid opening balance: %v", err))
	}
	if balance.IsNegative() {
		exitWithError("Opening balance must not be negative")
	}

	// Build the in-memory bank graph. It lives for this process only and is
	// rebuilt from scratch on every run.
	bank := domain.NewBank(bankName, swiftCode)
	customer := domain.NewCustomer(customerName, customerAddress, customerPhone, customerEmail)
	account := domain.NewAccount(accountNumber)
	account.LinkCard(domain.Card{Number: cardNumber, Password: cardPassword})
	if balance.IsPositive() {
		if err := account.Credit(balance); err != nil {
			exitWithError(fmt.Sprintf("Seeding opening balance: %v", err))
		}
	}
	customer.AddAccount(account)
	bank.AddCustomer(customer)

	// Pick the statement formatter
	var formatter report.StatementFormatter
	switch statementFormat {
	case "text":
		formatter = report.NewTextFormatter(currency)
	case "json":
		formatter = report.NewJSONFormatter(prettyPrint)
	default:
		exitWithError(fmt.Sprintf("Unsupported statement format: %s", statementFormat))
		return
	}

	display := console.NewDisplay(os.Stdout, !noClear)
	input := console.NewInput(os.Stdin, os.Stdout)

	controller := atm.NewController(bank, location, display, input, formatter, currency)
	if err := controller.Run(); err != nil {
		exitWithError(fmt.Sprintf("Session ended unexpectedly: %v", err))
	}
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
