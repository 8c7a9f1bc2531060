package convert

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bokysan/base94/internal/args"
	"github.com/bokysan/base94/internal/convert"
	"github.com/bokysan/base94/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func options(mode args.Mode, src, dst, base string) *args.CodecOptions {
	opts := &args.CodecOptions{
		Encode: mode == args.ModeEncode,
		Decode: mode == args.ModeDecode,
	}
	opts.Positional.Source = src
	opts.Positional.Destination = dst
	opts.Positional.Base = base
	return opts
}

func Test_CommandRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "base94")
	require.NoErrorf(t, err, "Could not create temp dir: %v", err)
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "data.bin")
	encoded := filepath.Join(dir, "data.b42")
	decoded := filepath.Join(dir, "data.out")
	data := []byte("some binary \x00\x01\x02 data")
	require.NoError(t, ioutil.WriteFile(src, data, 0644))

	require.NoError(t, NewCommand(options(args.ModeEncode, src, encoded, "42")).Execute(nil))
	require.NoError(t, NewCommand(options(args.ModeDecode, encoded, decoded, "42")).Execute(nil))

	back, err := ioutil.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func Test_CommandInvalidBaseWritesNothing(t *testing.T) {
	dir, err := ioutil.TempDir("", "base94")
	require.NoErrorf(t, err, "Could not create temp dir: %v", err)
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "out.txt")
	for _, base := range []string{"1", "95", "0", "-3", "abc"} {
		// source does not even exist, the base must be rejected first
		err := NewCommand(options(args.ModeEncode, filepath.Join(dir, "missing"), dst, base)).Execute(nil)
		require.Error(t, err)

		var baseErr *enc.InvalidBaseError
		require.True(t, errors.As(err, &baseErr), "Expected InvalidBaseError for %v, got %v", base, err)

		_, err = os.Stat(dst)
		require.True(t, os.IsNotExist(err))
	}
}

func Test_CommandConfiguredBase(t *testing.T) {
	out := &bytes.Buffer{}
	opts := options(args.ModeEncode, convert.StdStream, convert.StdStream, "")
	base := 10
	opts.Base = &base

	cmd := NewCommand(opts)
	cmd.Stdin = strings.NewReader("\x0c")
	cmd.Stdout = out
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "#\"", out.String())
}

func Test_CommandUsage(t *testing.T) {
	var usageErr *args.UsageError

	opts := options(args.ModeEncode, "in", "out", "")
	opts.Decode = true
	require.True(t, errors.As(NewCommand(opts).Execute(nil), &usageErr))

	opts = options(args.ModeEncode, "in", "", "")
	require.True(t, errors.As(NewCommand(opts).Execute(nil), &usageErr))

	opts = options(args.ModeEncode, "in", "out", "94")
	require.True(t, errors.As(NewCommand(opts).Execute([]string{"more"}), &usageErr))
}

func Test_CommandMissingSource(t *testing.T) {
	err := NewCommand(options(args.ModeDecode, filepath.Join("does", "not", "exist"), "out", "")).Execute(nil)

	var ioErr *convert.IOError
	require.True(t, errors.As(err, &ioErr), "Expected IOError, got %v", err)
}
