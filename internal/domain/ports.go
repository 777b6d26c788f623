package domain

// Display defines the output port of the ATM.
type Display interface {
	// Show presents one message (a line or a block of text) to the user.
	Show(message string)

	// Clear empties the visible output area. Purely cosmetic; carries no
	// semantic state.
	Clear()
}

// Input defines the input port of the ATM.
type Input interface {
	// Read shows prompt and returns one raw line of input without the
	// trailing newline. No validation happens at this layer.
	Read(prompt string) (string, error)
}
