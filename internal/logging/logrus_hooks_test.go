package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_ContextHook(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.Info("where am I")

	require.Contains(t, buf.String(), `"file":"logrus_hooks_test.go"`)
	require.Contains(t, buf.String(), `"func":"logging.Test_ContextHook"`)
}
