package util

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrGeneric = 99
)

// ExitCoder is implemented by errors which carry their own process exit code
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the process exit code for the given error. Error code is unwrapped from `flags.Error`
// or from an `ExitCoder` anywhere in the error chain. If it's a different kind of error, a generic
// error code - 99 - is returned
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	var exitCoder ExitCoder
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}

	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code from
// ExitCode. Help requests exit with 0 without logging anything.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
	log.Debugf("%+v", err)
	log.Exit(code)
}
