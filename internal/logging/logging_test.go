package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		debugOn bool
		warnOn  bool
	}{
		{"default", Options{}, false, true},
		{"verbose", Options{Verbose: true}, true, true},
		{"json verbose", Options{Verbose: true, JSON: true}, true, true},
		{"json", Options{JSON: true}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.opts)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer func() { _ = logger.Sync() }()

			if got := logger.Core().Enabled(zapcore.DebugLevel); got != tt.debugOn {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := logger.Core().Enabled(zapcore.WarnLevel); got != tt.warnOn {
				t.Errorf("warn enabled = %v, want %v", got, tt.warnOn)
			}
			if logger.Core().Enabled(zapcore.InfoLevel) && !tt.opts.Verbose {
				t.Error("info enabled without verbose")
			}
		})
	}
}
