package logger

import (
	"testing"
	"wellnessa_backend/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	cases := []struct {
		mode, level string
		want        zapcore.Level
	}{
		{"release", "", zapcore.InfoLevel},
		{"debug", "", zapcore.DebugLevel},
		{"release", "warn", zapcore.WarnLevel},
		{"debug", "error", zapcore.ErrorLevel},
		{"release", "nonsense", zapcore.InfoLevel},
	}
	for _, c := range cases {
		cfg := &config.Config{}
		cfg.Server.Mode = c.mode
		cfg.Log.Level = c.level
		SetLevel(cfg)
		if got := Level(); got != c.want {
			t.Fatalf("mode=%s level=%s: got %s, want %s", c.mode, c.level, got, c.want)
		}
	}
}
