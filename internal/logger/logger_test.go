package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{"produção info", "production", "info", zapcore.InfoLevel, false},
		{"desenvolvimento debug", "development", "debug", zapcore.DebugLevel, false},
		{"nível em maiúsculas", "production", "WARN", zapcore.WarnLevel, false},
		{"nível inválido", "production", "verboso", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.env, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			assert.False(t, logger.Core().Enabled(tt.want-1))
		})
	}
}

func TestContext(t *testing.T) {
	fallback := zap.NewExample()
	scoped := fallback.With(zap.String("request_id", "abc"))

	assert.Same(t, fallback, FromContext(context.Background(), fallback))
	assert.Same(t, scoped, FromContext(WithContext(context.Background(), scoped), fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))
}
