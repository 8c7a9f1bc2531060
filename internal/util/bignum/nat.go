// Package bignum provides the small slice of unsigned arbitrary-precision arithmetic needed to
// re-express a whole byte buffer in another radix: construction from and to big-endian bytes,
// division by a small divisor and multiply-add of a small factor.
package bignum

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrDivisionByZero is returned by DivModSmall when the divisor is zero
var ErrDivisionByZero = errors.New("division by zero")

// Nat is an unsigned integer of unbounded magnitude. The zero value is ready to use and
// represents 0.
type Nat struct {
	v big.Int
}

// FromBytes interprets b as a big-endian unsigned integer. An empty buffer is zero.
func FromBytes(b []byte) *Nat {
	n := &Nat{}
	n.v.SetBytes(b)
	return n
}

// FromUint64 returns a Nat holding x
func FromUint64(x uint64) *Nat {
	n := &Nat{}
	n.v.SetUint64(x)
	return n
}

// Bytes returns the minimal big-endian representation of n. Zero is returned as a single
// zero byte, everything else has no leading zero byte.
func (n *Nat) Bytes() []byte {
	if n.IsZero() {
		return []byte{0}
	}
	return n.v.Bytes()
}

// DivModSmall sets z to x / d and returns z together with x mod d.
func (z *Nat) DivModSmall(x *Nat, d uint) (*Nat, uint, error) {
	if d == 0 {
		return nil, 0, errors.WithStack(ErrDivisionByZero)
	}

	r := new(big.Int)
	z.v.QuoRem(&x.v, new(big.Int).SetUint64(uint64(d)), r)
	return z, uint(r.Uint64()), nil
}

// MulAddSmall sets z to x*m + a and returns z.
func (z *Nat) MulAddSmall(x *Nat, m, a uint) *Nat {
	z.v.Mul(&x.v, new(big.Int).SetUint64(uint64(m)))
	z.v.Add(&z.v, new(big.Int).SetUint64(uint64(a)))
	return z
}

func (n *Nat) IsZero() bool {
	return n.v.Sign() == 0
}

// BitLen returns the length of n in bits. Zero has length 0.
func (n *Nat) BitLen() int {
	return n.v.BitLen()
}

// Cmp compares n and y and returns -1, 0 or +1.
func (n *Nat) Cmp(y *Nat) int {
	return n.v.Cmp(&y.v)
}

// String returns the decimal form of n
func (n *Nat) String() string {
	return n.v.String()
}
