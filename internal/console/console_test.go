package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tirasundara/atm-simulator/internal/console"
)

func TestInputRead(t *testing.T) {
	var prompts bytes.Buffer
	input := console.NewInput(strings.NewReader("CARD123\r\n1234"), &prompts)

	line, err := input.Read("Card Number: ")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if line != "CARD123" {
		t.Errorf("Expected CARD123, got %q", line)
	}
	if prompts.String() != "Card Number: " {
		t.Errorf("Expected prompt to be written, got %q", prompts.String())
	}

	// The final line has no newline; it must still be returned.
	line, err = input.Read("Password: ")
	if err != nil {
		t.Fatalf("Read failed on EOF-terminated line: %v", err)
	}
	if line != "1234" {
		t.Errorf("Expected 1234, got %q", line)
	}

	// Nothing left: now Read fails.
	if _, err := input.Read("again: "); err == nil {
		t.Errorf("Expected an error once input is exhausted")
	}
}

func TestDisplayShow(t *testing.T) {
	var out bytes.Buffer
	display := console.NewDisplay(&out, false)

	display.Show("Hello")
	if out.String() != "Hello\n" {
		t.Errorf("Expected %q, got %q", "Hello\n", out.String())
	}
}

func TestDisplayClear(t *testing.T) {
	var out bytes.Buffer

	console.NewDisplay(&out, false).Clear()
	if out.Len() != 0 {
		t.Errorf("Expected no output with clearing disabled, got %q", out.String())
	}

	console.NewDisplay(&out, true).Clear()
	if !strings.Contains(out.String(), "\033[2J") {
		t.Errorf("Expected ANSI clear sequence, got %q", out.String())
	}
}
