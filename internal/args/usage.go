package args

import (
	"strconv"
	"strings"

	"github.com/bokysan/base94/internal/util/enc"
	"github.com/pkg/errors"
)

// ExitUsage is the process exit code for UsageError
const ExitUsage = 2

// Usage is appended to the program name in the help output
const Usage = "[OPTIONS] <-e|-d> src dst [base]"

// UsageError is returned when the program is invoked with an unexpected set of arguments
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) ExitCode() int {
	return ExitUsage
}

// Mode is the direction of the conversion
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

func (m Mode) String() string {
	if m == ModeDecode {
		return "decode"
	}
	return "encode"
}

// Mode returns the selected conversion mode. Exactly one of -e / -d must be given.
func (o *CodecOptions) Mode() (Mode, error) {
	switch {
	case o.Encode && o.Decode:
		return ModeEncode, errors.WithStack(&UsageError{Message: "Only one of -e and -d may be given"})
	case o.Encode:
		return ModeEncode, nil
	case o.Decode:
		return ModeDecode, nil
	default:
		return ModeEncode, errors.WithStack(&UsageError{Message: "One of -e or -d is required"})
	}
}

// Validate checks the argument count. The remaining arguments are those the flags parser could
// not place.
func (o *CodecOptions) Validate(rest []string) error {
	if len(rest) > 0 {
		return errors.WithStack(&UsageError{Message: "Too many arguments: " + strings.Join(rest, " ")})
	}
	if o.Positional.Source == "" || o.Positional.Destination == "" {
		return errors.WithStack(&UsageError{Message: "Both src and dst are required"})
	}
	return nil
}

// EffectiveBase returns the base given on the command line, falling back to the configured one and
// then to enc.DefaultBase.
// The range is not checked here, see enc.NewBase94Encoder.
func (o *CodecOptions) EffectiveBase() (int, error) {
	if o.Positional.Base != "" {
		return ParseBase(o.Positional.Base)
	}
	if o.Base != nil {
		return *o.Base, nil
	}
	return enc.DefaultBase, nil
}

// ParseBase parses the textual base. Anything that isn't an integer is an enc.InvalidBaseError.
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.WithStack(&enc.InvalidBaseError{Value: s})
	}
	return base, nil
}
