package enc

const (
	// Alphabet holds every printable, non-space ASCII character (0x21 - 0x7E). The position of
	// the character is its digit value.
	Alphabet = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

	// AlphabetSize is the number of symbols available and therefore the largest usable base
	AlphabetSize = len(Alphabet)
)

// digits maps every byte to its digit value, or -1 if it's not part of the Alphabet
var digits [256]int

func init() {
	for k := range digits {
		digits[k] = -1
	}
	for k := 0; k < len(Alphabet); k++ {
		digits[Alphabet[k]] = k
	}
}

// SymbolFor returns the symbol for the given digit value. Digits outside of [0, AlphabetSize) are
// a programming error and will panic.
func SymbolFor(digit int) byte {
	return Alphabet[digit]
}

// DigitFor returns the digit value of the given symbol.
func DigitFor(c byte) (int, error) {
	d := digits[c]
	if d < 0 {
		return -1, &InvalidSymbolError{Position: -1, Symbol: c}
	}
	return d, nil
}
