package convert

import (
	"github.com/bokysan/base94/internal/args"
	"github.com/bokysan/base94/internal/convert"
	"github.com/bokysan/base94/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command converts src into dst, in the direction selected by -e / -d
type Command struct {
	*args.CodecOptions

	// Stdin and Stdout are handed over to the converter for the "-" path
	Stdin  io.Reader
	Stdout io.Writer
}

func NewCommand(opts *args.CodecOptions) *Command {
	return &Command{
		CodecOptions: opts,
	}
}

// Execute runs the conversion. `rest` are the arguments left over after parsing the command line.
// The base is validated before anything is read or written.
func (c *Command) Execute(rest []string) error {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Codec options: %s", spew.Sdump(c.CodecOptions))
	}

	mode, err := c.Mode()
	if err != nil {
		return err
	}
	if err := c.Validate(rest); err != nil {
		return err
	}

	base, err := c.EffectiveBase()
	if err != nil {
		return err
	}
	encoder, err := enc.NewBase94Encoder(base)
	if err != nil {
		return err
	}

	converter := convert.NewConverter(encoder)
	converter.Trim = c.Trim
	converter.Stdin = c.Stdin
	converter.Stdout = c.Stdout

	src, dst := c.Positional.Source, c.Positional.Destination
	log.Debugf("Running %v of %s into %s with %v", mode, src, dst, encoder)

	switch mode {
	case args.ModeDecode:
		err = converter.DecodeFile(src, dst)
	default:
		err = converter.EncodeFile(src, dst)
	}
	if err != nil {
		return errors.Wrapf(err, "Could not %v %s", mode, src)
	}
	return nil
}
