package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	// Reinitialize logger with test output
	Reset()
	InitLogger(level)

	fn()

	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:  "info log",
			level: "info",
			logFn: func() {
				Info("catalog refreshed")
			},
			contains: []string{"catalog refreshed"},
		},
		{
			name:  "info log with fields",
			level: "info",
			logFn: func() {
				Info("artifact cached", Fields{"kind": "bootloader"})
			},
			contains: []string{"artifact cached", "kind=bootloader"},
		},
		{
			name:  "debug log with debug level",
			level: "debug",
			logFn: func() {
				Debug("row skipped")
			},
			contains: []string{"row skipped", "level=DEBUG"},
		},
		{
			name:  "debug log with info level",
			level: "info",
			logFn: func() {
				Debug("row skipped")
			},
			excludes: []string{"row skipped"},
		},
		{
			name:  "warn log",
			level: "info",
			logFn: func() {
				Warnf("orphan firmware row %d", 42)
			},
			contains: []string{"orphan firmware row 42", "level=WARN"},
		},
		{
			name:  "error log",
			level: "error",
			logFn: func() {
				Errorf("download failed: %s", "timeout")
			},
			contains: []string{"download failed: timeout", "level=ERROR"},
		},
		{
			name:  "success log",
			level: "info",
			logFn: func() {
				Success("download complete")
			},
			contains: []string{"download complete", "status=success"},
		},
		{
			name:  "unknown level falls back to info",
			level: "bogus",
			logFn: func() {
				Info("still logged")
			},
			contains: []string{"still logged"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, excluded := range tt.excludes {
				assert.NotContains(t, output, excluded)
			}
		})
	}
}
