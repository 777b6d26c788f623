package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tirasundara/atm-simulator/internal/domain"
)

const timestampFormat = "2006-01-02 15:04:05"

// StatementFormatter defines the interface for rendering an account's
// transaction history
type StatementFormatter interface {
	Format(records []domain.TransactionRecord) ([]byte, error)
	FileExtension() string
}

// TextFormatter renders one pipe-separated line per transaction
type TextFormatter struct {
	Currency string
}

func NewTextFormatter(currency string) *TextFormatter {
	return &TextFormatter{
		Currency: currency,
	}
}

// Format implements the StatementFormatter interface for plain text
func (f *TextFormatter) Format(records []domain.TransactionRecord) ([]byte, error) {
	var sb strings.Builder

	for _, r := range records {
		amount := "N/A"
		if r.Amount.Valid {
			amount = fmt.Sprintf("%s %s", r.Amount.Decimal.StringFixed(2), f.Currency)
		}
		fmt.Fprintf(&sb, "ID: %d | Type: %s | Amount: %s | Time: %s\n",
			r.ID, r.Kind, amount, r.Timestamp.Format(timestampFormat))
	}

	return []byte(sb.String()), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}

// JSONFormatter renders the transaction history as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// statementEntry is the JSON shape of a single transaction record
type statementEntry struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Format implements the StatementFormatter interface for JSON
func (f *JSONFormatter) Format(records []domain.TransactionRecord) ([]byte, error) {
	entries := make([]statementEntry, 0, len(records))
	for _, r := range records {
		entry := statementEntry{
			ID:        r.ID,
			Kind:      string(r.Kind),
			Timestamp: r.Timestamp.Format(timestampFormat),
		}
		if r.Amount.Valid {
			entry.Amount = r.Amount.Decimal.StringFixed(2)
		}
		entries = append(entries, entry)
	}

	if f.PrettyPrint {
		return json.MarshalIndent(entries, "", "  ")
	}
	return json.Marshal(entries)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
