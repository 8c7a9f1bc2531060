package logging

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bokysan/base94/internal/args"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetupLoggingToFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "logging")
	require.NoErrorf(t, err, "Could not create temp dir: %v", err)
	defer os.RemoveAll(dir)
	defer log.SetFormatter(&log.TextFormatter{})
	defer log.SetLevel(log.GetLevel())

	file := filepath.Join(dir, "base94.log")
	opts := &args.GeneralOptions{
		Verbose:   []bool{true, true},
		LogFile:   &file,
		LogFormat: "json",
	}

	closer, err := SetupLogging(opts)
	require.NoError(t, err)
	log.Infof("hello from the test")
	closer()

	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"hello from the test"`)
	require.Contains(t, string(data), `"@level":"info"`)
}

func Test_SetupLoggingInvalidFile(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	file := filepath.Join("does", "not", "exist", "base94.log")
	_, err := SetupLogging(&args.GeneralOptions{LogFile: &file})
	require.Error(t, err)
}
