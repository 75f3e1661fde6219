package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		verbose      bool
		debugEnabled bool
	}{
		{"default level hides debug", false, false},
		{"verbose enables debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.verbose)
			require.NotNil(t, logger)
			assert.Equal(t, tt.debugEnabled, logger.Desugar().Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	require.NotNil(t, logger)

	// Must be safe to use without any sinks configured.
	logger.Infow("ignored", "key", "value")
	assert.NoError(t, logger.Sync())
}
