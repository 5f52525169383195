// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		pretty    bool
		wantDebug bool
		wantJSON  bool
	}{
		{"json info", false, false, false, true},
		{"json debug", true, false, true, true},
		{"console info", false, true, false, false},
		{"console debug", true, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.verbose, tt.pretty)

			log.Debug().Msg("debug-event")
			log.Info().Int("issue_id", 7).Msg("info-event")

			out := buf.String()
			if got := strings.Contains(out, "debug-event"); got != tt.wantDebug {
				t.Errorf("Expected debug output %v, got %v:\n%s", tt.wantDebug, got, out)
			}
			if !strings.Contains(out, "info-event") {
				t.Errorf("Expected info output, got:\n%s", out)
			}
			if got := strings.Contains(out, `"issue_id":7`); got != tt.wantJSON {
				t.Errorf("Expected JSON fields %v, got %v:\n%s", tt.wantJSON, got, out)
			}
		})
	}
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")
	if IsInteractive(nil) {
		t.Error("Expected CI environment to be non-interactive")
	}
}
