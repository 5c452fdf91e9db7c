package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"info":  zapcore.InfoLevel,
		"bogus": zapcore.InfoLevel,
	}
	for in, want := range cases {
		for _, format := range []string{"json", "console"} {
			l := New(in, format)
			assert.True(t, l.Core().Enabled(want), "level %s format %s", in, format)
			if want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(want-1), "level %s format %s", in, format)
			}
		}
	}
}
