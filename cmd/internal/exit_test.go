package internal

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		level    string
		verbose  bool
		expected log.Level
	}{
		"Default": {expected: log.InfoLevel},
		"Warn":    {level: "warn", expected: log.WarnLevel},
		"Verbose": {level: "error", verbose: true, expected: log.DebugLevel},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := NewLogger(tc.level, tc.verbose)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, l.GetLevel())
		})
	}
}

func TestNewLogger_Neg(t *testing.T) {
	_, err := NewLogger("loud", false)
	assert.Error(t, err)
}
