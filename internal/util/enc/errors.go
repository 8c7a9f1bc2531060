package enc

import (
	"fmt"
	"strconv"
)

const (
	// ExitInvalidBase is the process exit code for InvalidBaseError
	ExitInvalidBase = 3
	// ExitInvalidSymbol is the process exit code for InvalidSymbolError
	ExitInvalidSymbol = 4
)

// InvalidBaseError is returned when the requested base is not a number in [MinBase, MaxBase]
type InvalidBaseError struct {
	Value string
}

// NewInvalidBaseError creates an InvalidBaseError for a numeric base
func NewInvalidBaseError(base int) *InvalidBaseError {
	return &InvalidBaseError{Value: strconv.Itoa(base)}
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%s': must be a number between %d and %d", e.Value, MinBase, MaxBase)
}

func (e *InvalidBaseError) ExitCode() int {
	return ExitInvalidBase
}

// InvalidSymbolError is returned when the input contains a character outside of the Alphabet, or
// a character whose digit value is not valid in the active base.
type InvalidSymbolError struct {
	// Position is the zero-based offset of the offending byte, -1 if unknown
	Position int
	Symbol   byte
	// Base is set when the symbol is part of the Alphabet but too large for the base
	Base int
}

func (e *InvalidSymbolError) Error() string {
	where := ""
	if e.Position >= 0 {
		where = fmt.Sprintf(" at position %d", e.Position)
	}
	if e.Base > 0 {
		return fmt.Sprintf("invalid symbol %q%s: digit %d is out of range for base %d", e.Symbol, where, digits[e.Symbol], e.Base)
	}
	return fmt.Sprintf("invalid symbol 0x%02x%s: not part of the alphabet", e.Symbol, where)
}

func (e *InvalidSymbolError) ExitCode() int {
	return ExitInvalidSymbol
}
