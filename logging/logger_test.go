package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew tests logger construction across levels
func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(Config{Level: level})
		require.NoError(t, err, level)
		assert.NotNil(t, logger.Logger)
	}
}

// TestNewInvalidLevel tests rejection of unknown levels
func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

// TestNewNop tests the silent fallback logger
func TestNewNop(t *testing.T) {
	logger := NewNop()
	require.NotNil(t, logger)
	logger.Info("discarded")
}

// TestNewDevelopment tests the console debug logger
func TestNewDevelopment(t *testing.T) {
	assert.NotNil(t, NewDevelopment().Logger)
}
