// Package convert runs an encoder over whole files. The source is read completely into memory, the
// result is built completely in memory and only then committed to the destination. A failed
// conversion never leaves a (partial) destination file behind.
package convert

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bokysan/base94/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StdStream is the path name that refers to stdin (as a source) or stdout (as a destination)
const StdStream = "-"

// Converter reads a source, encodes or decodes it, and writes the result to a destination
type Converter struct {
	Encoder enc.Encoder

	// Trim strips surrounding whitespace from the symbols before decoding
	Trim bool

	// Stdin and Stdout are used for the "-" path. They default to os.Stdin and os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer
}

// NewConverter creates a new converter for the given encoder
func NewConverter(encoder enc.Encoder) *Converter {
	return &Converter{
		Encoder: encoder,
	}
}

// EncodeFile reads raw bytes from source and writes the symbol text to destination
func (c *Converter) EncodeFile(source, destination string) error {
	data, err := c.read(source)
	if err != nil {
		return err
	}

	encoded := c.Encoder.Encode(data)
	log.Debugf("Encoded %d bytes from %s into %d symbols using %v", len(data), source, len(encoded), c.Encoder)

	return c.write(destination, []byte(encoded))
}

// DecodeFile reads symbol text from source and writes the raw bytes to destination
func (c *Converter) DecodeFile(source, destination string) error {
	data, err := c.read(source)
	if err != nil {
		return err
	}

	if c.Trim {
		data = bytes.TrimSpace(data)
	}

	decoded, err := c.Encoder.Decode(string(data))
	if err != nil {
		return errors.Wrapf(err, "Could not decode %s", source)
	}
	log.Debugf("Decoded %d symbols from %s into %d bytes using %v", len(data), source, len(decoded), c.Encoder)

	return c.write(destination, decoded)
}

func (c *Converter) read(source string) ([]byte, error) {
	var data []byte
	var err error
	if source == StdStream {
		in := c.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = ioutil.ReadAll(in)
	} else {
		data, err = ioutil.ReadFile(source)
	}

	if err != nil {
		return nil, errors.WithStack(&IOError{Op: "read", Path: source, Err: err})
	}
	log.Tracef("Read %d bytes from %s", len(data), source)
	return data, nil
}

func (c *Converter) write(destination string, data []byte) error {
	if destination == StdStream {
		out := c.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return errors.WithStack(&IOError{Op: "write", Path: destination, Err: err})
		}
		return nil
	}

	if err := commit(destination, data); err != nil {
		return errors.WithStack(&IOError{Op: "write", Path: destination, Err: err})
	}
	log.Tracef("Wrote %d bytes to %s", len(data), destination)
	return nil
}

// commit writes the data into a temporary file next to the destination and moves it in place when
// everything has been written.
func commit(destination string, data []byte) error {
	dir, name := filepath.Split(destination)
	if dir == "" {
		dir = "."
	}

	f, err := ioutil.TempFile(dir, "."+name+".*.tmp")
	if err != nil {
		return err
	}

	var errs error
	if _, err := f.Write(data); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := f.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs == nil {
		if err := os.Chmod(f.Name(), 0644); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if errs == nil {
		if err := os.Rename(f.Name(), destination); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if errs != nil {
		if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
			errs = multierror.Append(errs, err)
		}
		return errs
	}
	return nil
}
