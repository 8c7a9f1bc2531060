package bignum

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_FromBytesEmptyIsZero(t *testing.T) {
	n := FromBytes([]byte{})
	require.True(t, n.IsZero())
	require.Equal(t, 0, n.BitLen())
	require.Equal(t, []byte{0}, n.Bytes())

	n = FromBytes(nil)
	require.True(t, n.IsZero())
}

func Test_BytesMinimal(t *testing.T) {
	tests := []struct {
		in   []byte
		want []byte
	}{
		{[]byte{0x41, 0x42}, []byte{0x41, 0x42}},
		{[]byte{0x00, 0x00, 0x41}, []byte{0x41}},
		{[]byte{0x00}, []byte{0x00}},
		{[]byte{0x00, 0x00, 0x00}, []byte{0x00}},
		{[]byte{0x01, 0x00, 0x00}, []byte{0x01, 0x00, 0x00}},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, test := range tests {
		n := FromBytes(test.in)
		got := n.Bytes()
		require.Equal(t, test.want, got, "Bytes of %x", test.in)
		if !n.IsZero() {
			require.Equal(t, (n.BitLen()+7)/8, len(got))
		}
		require.Equal(t, 0, FromBytes(got).Cmp(n), "FromBytes(Bytes(n)) != n for %x", test.in)
	}
}

func Test_DivModSmall(t *testing.T) {
	n := FromBytes([]byte{0x41, 0x42}) // 16706

	q, r, err := new(Nat).DivModSmall(n, 94)
	require.NoError(t, err)
	require.Equal(t, uint(68), r)
	require.Equal(t, "177", q.String())
	require.Equal(t, "16706", n.String(), "Divident must not be modified")

	q, r, err = q.DivModSmall(q, 94)
	require.NoError(t, err)
	require.Equal(t, uint(83), r)
	require.Equal(t, "1", q.String())
}

func Test_DivModSmallByZero(t *testing.T) {
	_, _, err := new(Nat).DivModSmall(FromUint64(10), 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDivisionByZero))
}

func Test_MulAddSmall(t *testing.T) {
	n := new(Nat)
	n.MulAddSmall(n, 94, 1)
	n.MulAddSmall(n, 94, 83)
	n.MulAddSmall(n, 94, 68)
	require.Equal(t, "16706", n.String())
	require.Equal(t, []byte{0x41, 0x42}, n.Bytes())
}

func Test_MulAddSmallCarriesPastWord(t *testing.T) {
	n := FromUint64(math.MaxUint64)
	n.MulAddSmall(n, 2, 1)
	require.Equal(t, "36893488147419103231", n.String())
	require.Equal(t, 65, n.BitLen())
	require.Equal(t, []byte{0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, n.Bytes())
}

func Test_DivModMulAddInverse(t *testing.T) {
	for d := uint(2); d <= 94; d++ {
		x := FromBytes([]byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04, 0x05})
		q, r, err := new(Nat).DivModSmall(x, d)
		require.NoError(t, err)
		require.Less(t, r, d)
		back := new(Nat).MulAddSmall(q, d, r)
		require.Equal(t, 0, back.Cmp(x), "q*d+r != x for d=%v", d)
	}
}
