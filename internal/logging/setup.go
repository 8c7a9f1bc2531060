package logging

import (
	"os"
	"strings"

	"github.com/bokysan/base94/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logger from the general options. The returned function closes
// the log file, if one was opened.
func SetupLogging(opts *args.GeneralOptions) (func(), error) {
	SetVerbosity(opts.Verbose)

	if opts.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if opts.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(opts.LogColor))
		fullTimestamp := opts.LogFullTimestamp
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: fullTimestamp,
		})
	}
	log.SetReportCaller(opts.LogReportCaller)

	closer := func() {}
	if opts.LogFile != nil && len(*opts.LogFile) > 0 && *opts.LogFile != "-" {
		f, err := os.OpenFile(*opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return closer, errors.Wrapf(err, "Could not open log file %s", *opts.LogFile)
		}
		log.SetOutput(f)
		closer = func() {
			log.SetOutput(os.Stderr)
			if err := f.Close(); err != nil {
				log.Errorf("Could not close %s: %v", f.Name(), err)
			}
		}
	}

	log.Infof("Verbosity level: %v", VerbosityName())
	return closer, nil
}
