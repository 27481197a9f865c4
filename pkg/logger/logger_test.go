package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildConfig_Levels(t *testing.T) {
	tests := []struct {
		env  string
		want zap.AtomicLevel
	}{
		{"production", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{" Debug ", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"development", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"", zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := buildConfig(tt.env)
			assert.Equal(t, tt.want.Level(), cfg.Level.Level())
			assert.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
		})
	}
}

func TestBuildConfig_ProductionIsJSON(t *testing.T) {
	assert.Equal(t, "json", buildConfig("production").Encoding)
	assert.Equal(t, "console", buildConfig("local").Encoding)
}

func TestNew(t *testing.T) {
	l, err := New("landing", "production")
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.NotNil(t, Must("landing", "local"))
}
