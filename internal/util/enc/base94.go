package enc

import (
	"fmt"

	"github.com/bokysan/base94/internal/util/bignum"
	"github.com/pkg/errors"
)

const (
	// DefaultBase is used when no base is configured
	DefaultBase = 94
	MinBase     = 2
	MaxBase     = AlphabetSize
)

// -------------------------------------------------------

// Base94Encoder treats the whole input as one big-endian unsigned number and writes it out in the
// configured base, least significant digit first. Every digit d is written as Alphabet[d].
//
// The number model has no notion of length: leading zero bytes of the input are not preserved and
// zero (including an empty input) always decodes to a single zero byte.
type Base94Encoder struct {
	base int
}

// NewBase94Encoder creates a new encoder for the given base
func NewBase94Encoder(base int) (*Base94Encoder, error) {
	if base < MinBase || base > MaxBase {
		return nil, errors.WithStack(NewInvalidBaseError(base))
	}
	return &Base94Encoder{
		base: base,
	}, nil
}

func (b *Base94Encoder) Name() string {
	return "Base94"
}

func (b *Base94Encoder) String() string {
	return fmt.Sprintf("%v(%v, base %d)", b.Name(), string(b.Code()), b.base)
}

func (b *Base94Encoder) Code() byte {
	return 'N'
}

func (b *Base94Encoder) Base() int {
	return b.base
}

func (b *Base94Encoder) Encode(data []byte) string {
	n := bignum.FromBytes(data)
	base := uint(b.base)

	// log(256)/log(2) = 8 is the worst case, i.e. base 2
	dst := make([]byte, 0, len(data)*8+1)
	for {
		var d uint
		var err error
		if n, d, err = n.DivModSmall(n, base); err != nil {
			// base is validated in the constructor, it can never be zero
			panic(err)
		}
		dst = append(dst, SymbolFor(int(d)))
		if n.IsZero() {
			break
		}
	}
	return string(dst)
}

func (b *Base94Encoder) Decode(data string) ([]byte, error) {
	if err := b.Validate(data); err != nil {
		return nil, err
	}

	// Symbol i is the coefficient of base^i. Walking from the most significant end allows us to
	// accumulate with a single multiply-add per symbol.
	n := new(bignum.Nat)
	base := uint(b.base)
	for k := len(data) - 1; k >= 0; k-- {
		n.MulAddSmall(n, base, uint(digits[data[k]]))
	}
	return n.Bytes(), nil
}

// Validate checks that every byte in data is a symbol of this base. The first invalid byte is
// reported.
func (b *Base94Encoder) Validate(data string) error {
	for k := 0; k < len(data); k++ {
		d, err := DigitFor(data[k])
		if err != nil {
			return errors.WithStack(&InvalidSymbolError{Position: k, Symbol: data[k]})
		}
		if d >= b.base {
			return errors.WithStack(&InvalidSymbolError{Position: k, Symbol: data[k], Base: b.base})
		}
	}
	return nil
}
