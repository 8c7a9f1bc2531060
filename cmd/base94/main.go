package main

import (
	"fmt"
	"github.com/bokysan/base94/internal/args"
	"github.com/bokysan/base94/internal/commands/convert"
	"github.com/bokysan/base94/internal/commands/version"
	scFlags "github.com/bokysan/base94/internal/flags"
	"github.com/bokysan/base94/internal/logging"
	"github.com/bokysan/base94/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base94 is the main executable
type Base94 struct {
	parser *flags.Parser
}

// NewBase94 will create a new instance of Base94 and initialize the parser
func NewBase94() *Base94 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Base94{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}
	b.parser.Usage = args.Usage

	b.setupGeneral()
	b.setupCodec()

	return b
}

// setupGeneral will configure general options
func (b *Base94) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupCodec will configure the conversion options and positional arguments
func (b *Base94) setupCodec() {
	if _, err := b.parser.AddGroup("Codec", "Conversion options", &args.Codec); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// run executes the program once the command line has been parsed
func (b *Base94) run(rest []string) error {
	if args.General.Version {
		return (&version.Command{}).Execute(rest)
	}

	closeLog, err := logging.SetupLogging(&args.General)
	if err != nil {
		return err
	}
	defer closeLog()

	err = convert.NewCommand(&args.Codec).Execute(rest)

	var usageErr *args.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(os.Stderr, "%s\n\n", usageErr.Message)
		b.parser.WriteHelp(os.Stderr)
	}
	return err
}

// main parses the command line, reads the configuration file and runs the conversion
func main() {

	b := NewBase94()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := scFlags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	rest, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)

	util.MustErrorNilOrExit(b.run(rest))
}
