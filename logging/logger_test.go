package logging

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}

	if again := NewLogger("test-component"); again != logger {
		t.Error("Expected the same logger for the same component")
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	entry := logger.WithField("component", "test")
	entry.Info("Test message")

	output := buf.String()

	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected output to contain [INFO], got: %s", output)
	}
	if !strings.Contains(output, "[test]") {
		t.Errorf("Expected output to contain [test], got: %s", output)
	}
	if !strings.Contains(output, "Test message") {
		t.Errorf("Expected output to contain 'Test message', got: %s", output)
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "session opened",
				Data: logrus.Fields{
					"component": "picker",
					"session":   "abc",
					"total":     7,
				},
			},
			want: []string{"[INFO]", "[picker]", "session opened", "session=abc total=7"},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "warning message",
				Data: logrus.Fields{
					"component": "picker",
				},
			},
			want:    []string{"[WARN]", "warning message"},
			notWant: []string{"[picker]"},
		},
		{
			name:   "caller information with function name",
			config: FormatConfig{},
			entry: func() *logrus.Entry {
				logger := logrus.New()
				logger.SetReportCaller(true)
				return &logrus.Entry{
					Logger:  logger,
					Level:   logrus.InfoLevel,
					Message: "committed",
					Data: logrus.Fields{
						"component": "picker",
					},
					Caller: &runtime.Frame{
						File:     "/path/to/controller.go",
						Line:     42,
						Function: "github.com/grovetools/viewpick/pkg/picker.(*Controller).Commit",
					},
				}
			}(),
			want: []string{"[INFO]", "[picker]", "committed", "[controller.go:42 picker.(*Controller).Commit]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &TextFormatter{Config: tt.config}
			output, err := formatter.Format(tt.entry)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			outputStr := string(output)
			for _, want := range tt.want {
				if !strings.Contains(outputStr, want) {
					t.Errorf("Expected output to contain '%s', got: %s", want, outputStr)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(outputStr, notWant) {
					t.Errorf("Expected output NOT to contain '%s', got: %s", notWant, outputStr)
				}
			}
		})
	}
}

func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("VIEWPICK_LOG_LEVEL", "debug")
	t.Setenv("VIEWPICK_LOG_CALLER", "true")

	logger := New("env-test", Config{Format: FormatConfig{StructuredToStderr: "never"}})

	if logger.Logger.Level != logrus.DebugLevel {
		t.Errorf("Expected debug level from env var, got %v", logger.Logger.Level)
	}
	if !logger.Logger.ReportCaller {
		t.Error("Expected caller reporting to be enabled from env var")
	}
}

func TestConfigLevelAndPreset(t *testing.T) {
	t.Setenv("VIEWPICK_LOG_LEVEL", "")

	logger := New("cfg-test", Config{
		Level:  "warn",
		Format: FormatConfig{Preset: "json", StructuredToStderr: "never"},
	})

	if logger.Logger.Level != logrus.WarnLevel {
		t.Errorf("Expected warn level from config, got %v", logger.Logger.Level)
	}
	if _, ok := logger.Logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", logger.Logger.Formatter)
	}
	if logger.Logger.Out != io.Discard {
		t.Error("Expected output to be discarded when no sink is active")
	}

	bad := New("cfg-test", Config{Level: "loud", Format: FormatConfig{StructuredToStderr: "never"}})
	if bad.Logger.Level != logrus.InfoLevel {
		t.Errorf("Expected fallback to info, got %v", bad.Logger.Level)
	}
}

func TestFileSink(t *testing.T) {
	t.Setenv("VIEWPICK_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "logs", "picker.log")

	logger := New("picker", Config{
		File:   FileSinkConfig{Enabled: true, Path: path},
		Format: FormatConfig{Preset: "simple", StructuredToStderr: "never"},
	})
	logger.Info("session opened")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to be written: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] session opened") {
		t.Errorf("Unexpected log file contents: %s", data)
	}
}

func TestShouldLogToStderr(t *testing.T) {
	if !shouldLogToStderr("always", logrus.InfoLevel) {
		t.Error("Expected 'always' to log to stderr")
	}
	if shouldLogToStderr("never", logrus.DebugLevel) {
		t.Error("Expected 'never' to suppress stderr")
	}
	if !shouldLogToStderr("auto", logrus.DebugLevel) {
		t.Error("Expected auto mode to log to stderr when debugging")
	}
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("3 views selected")
	p.InfoPretty("Generating configuration schema")
	p.ErrorPretty("load failed", errors.New("boom"))
	p.Path("state", ".viewpick/state.yml")

	out := buf.String()
	for _, want := range []string{"3 views selected", "Generating configuration schema", "load failed: boom", "state: .viewpick/state.yml"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, out)
		}
	}
}
