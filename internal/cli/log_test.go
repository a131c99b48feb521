package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("loaded") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("created") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("created") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("undo failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("saved")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("missing HH:MM:SS.ms timestamp: %q", buf.String())
	}
}

func TestProgress(t *testing.T) {
	t.Run("done logs at info", func(t *testing.T) {
		var buf bytes.Buffer
		newProgress(newLogger(&buf, log.InfoLevel)).done("exported")
		out := buf.String()
		if !strings.Contains(out, "exported (") || !strings.Contains(out, "s)") {
			t.Errorf("done output = %q, want message with elapsed time", out)
		}
	})

	t.Run("debug hidden at info", func(t *testing.T) {
		var buf bytes.Buffer
		newProgress(newLogger(&buf, log.InfoLevel)).debug("loaded")
		if buf.Len() != 0 {
			t.Errorf("debug output at info level: %q", buf.String())
		}
	})

	t.Run("debug shown at debug", func(t *testing.T) {
		var buf bytes.Buffer
		newProgress(newLogger(&buf, log.DebugLevel)).debug("loaded")
		if !strings.Contains(buf.String(), "loaded") {
			t.Errorf("debug output = %q", buf.String())
		}
	})
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
