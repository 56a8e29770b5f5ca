package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divsim/dividend-simulator/internal/calculation"
	"github.com/divsim/dividend-simulator/internal/logging"
)

// EngineLogger must satisfy the simulation engine's logging interface.
var _ calculation.Logger = (*logging.EngineLogger)(nil)

func TestNew(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "warning", "error"} {
		logger, err := logging.New(level, "console")
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, logger)
	}
	for _, format := range []string{"", "console", "json"} {
		logger, err := logging.New("info", format)
		require.NoError(t, err, "format %q", format)
		require.NotNil(t, logger)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := logging.New("chatty", "console")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New("info", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestEngineLoggerForwards(t *testing.T) {
	logger, err := logging.New("debug", "console")
	require.NoError(t, err)

	engine := logging.NewEngineLogger(logger)
	engine.Debugf("debug %d", 1)
	engine.Infof("info %s", "message")
	engine.Warnf("warn")
	engine.Errorf("error %v", assert.AnError)
}
