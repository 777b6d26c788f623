// Package atm implements the menu-driven session controller.
package atm

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-simulator/internal/domain"
	"github.com/tirasundara/atm-simulator/internal/report"
	"github.com/tirasundara/atm-simulator/internal/transaction"
)

// Menu option codes. The mapping is a stable contract: any other input
// routes to the invalid-choice branch.
const (
	optionWithdraw = "1"
	optionDeposit  = "2"
	optionBalance  = "3"
	optionHistory  = "4"
	optionExit     = "5"
)

const menuText = `
Main Menu:
1. Withdraw Money
2. Deposit Money
3. Check Balance
4. View Transactions
5. Exit`

// Controller drives one ATM session: a single authentication attempt
// followed by the menu loop against the authenticated account.
type Controller struct {
	bank      *domain.Bank
	location  string
	display   domain.Display
	input     domain.Input
	formatter report.StatementFormatter
	currency  string
}

// NewController creates a Controller for the given bank and ports.
func NewController(
	bank *domain.Bank,
	location string,
	display domain.Display,
	input domain.Input,
	formatter report.StatementFormatter,
	currency string,
) *Controller {
	return &Controller{
		bank:      bank,
		location:  location,
		display:   display,
		input:     input,
		formatter: formatter,
		currency:  currency,
	}
}

// Run performs one session. The returned error reports input I/O failures
// only (e.g. stdin closing); a failed authentication or a rejected
// transaction is shown to the user and is not an error.
func (c *Controller) Run() error {
	c.display.Clear()
	c.display.Show(fmt.Sprintf("Welcome to %s ATM (%s)\nPlease enter your card details to proceed.", c.bank.Name, c.location))

	cardNumber, err := c.input.Read("Card Number: ")
	if err != nil {
		return fmt.Errorf("reading card number: %w", err)
	}

	password, err := c.input.Read("Password: ")
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	account, ok := c.bank.Authenticate(cardNumber, password)
	if !ok {
		c.display.Show("Authentication failed. Please try again.")
		return nil
	}

	c.display.Show(fmt.Sprintf("\nAccess granted. Current balance: %s", c.money(account.Balance())))
	if _, err := c.input.Read("\nPress Enter to continue..."); err != nil {
		return fmt.Errorf("waiting for confirmation: %w", err)
	}

	return c.runMenu(account)
}

func (c *Controller) runMenu(account *domain.Account) error {
	for {
		c.display.Clear()
		c.display.Show(menuText)

		choice, err := c.input.Read("\nChoose an option: ")
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		if choice == optionExit {
			c.display.Show("\nEjecting card...\nGoodbye!")
			return nil
		}

		if err := c.processChoice(choice, account); err != nil {
			return err
		}

		if _, err := c.input.Read("\nPress Enter to return to the main menu..."); err != nil {
			return fmt.Errorf("waiting for confirmation: %w", err)
		}
	}
}

// processChoice dispatches one menu choice. Recoverable conditions (invalid
// choice, unparseable amount, rejected transaction) are reported through the
// display and keep the loop running.
func (c *Controller) processChoice(choice string, account *domain.Account) error {
	switch choice {
	case optionWithdraw:
		return c.runAmountTransaction(account, domain.KindWithdraw, "\nEnter amount to withdraw: ")

	case optionDeposit:
		return c.runAmountTransaction(account, domain.KindDeposit, "\nEnter amount to deposit: ")

	case optionBalance:
		inquiry := transaction.NewBalanceInquiry()
		inquiry.Execute(account)
		c.display.Clear()
		c.display.Show(fmt.Sprintf("Current Balance: %s", c.money(account.Balance())))

	case optionHistory:
		c.showTransactions(account)

	default:
		c.display.Show("Invalid choice. Please select a valid option.")
	}

	return nil
}

// runAmountTransaction prompts for an amount and executes a withdraw or
// deposit. A parse failure is reported before any transaction is
// constructed, so bad input draws nothing from the ID sequence.
func (c *Controller) runAmountTransaction(account *domain.Account, kind domain.TransactionKind, prompt string) error {
	raw, err := c.input.Read(prompt)
	if err != nil {
		return fmt.Errorf("reading amount: %w", err)
	}

	amount, perr := decimal.NewFromString(strings.TrimSpace(raw))
	if perr != nil {
		c.display.Show("Invalid input. Please enter a valid numeric amount.")
		return nil
	}

	var txn transaction.Transaction
	switch kind {
	case domain.KindWithdraw:
		txn = transaction.NewWithdraw(amount)
	case domain.KindDeposit:
		txn = transaction.NewDeposit(amount)
	}

	c.display.Clear()
	if txn.Execute(account) {
		c.display.Show(fmt.Sprintf("%s successful!\nNew Balance: %s", kind, c.money(account.Balance())))
	} else {
		// Non-positive amounts and insufficient funds share one message.
		c.display.Show("Transaction failed: Insufficient funds or invalid input.")
	}

	return nil
}

func (c *Controller) showTransactions(account *domain.Account) {
	c.display.Clear()
	c.display.Show("Transaction History:\n")

	out, err := c.formatter.Format(account.Transactions())
	if err != nil {
		c.display.Show(fmt.Sprintf("Could not format transaction history: %v", err))
		return
	}
	c.display.Show(strings.TrimRight(string(out), "\n"))
}

func (c *Controller) money(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), c.currency)
}
