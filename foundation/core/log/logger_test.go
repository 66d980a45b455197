// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formats, persistent fields, error logging and
//              timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Consolidated into one file, run id and timer coverage

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	ztkerror "github.com/msto63/ztk/foundation/core/error"
)

func newBufferLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	return data
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"trc", LevelTrace, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil || f.String() != name {
			t.Errorf("ParseFormat(%q) = %v, %v", name, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "[WRN]") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)
	logger.WithName("config").WithName("watch").
		WithRunID("2b1f0c6e-0000-4000-8000-000000000000").
		WithField("path", "/etc/ztk.toml").
		Info("reloaded", Field("attempt", 2))

	data := decodeLine(t, buf)
	if data["message"] != "reloaded" || data["level"] != "info" {
		t.Errorf("message/level = %v/%v", data["message"], data["level"])
	}
	if data["logger"] != "config.watch" {
		t.Errorf("logger = %v", data["logger"])
	}
	if data["run_id"] != "2b1f0c6e-0000-4000-8000-000000000000" {
		t.Errorf("run_id = %v", data["run_id"])
	}
	if data["path"] != "/etc/ztk.toml" || data["attempt"] != float64(2) {
		t.Errorf("fields = %v", data)
	}
}

func TestWithDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(FormatLogfmt, LevelInfo)
	child := parent.WithField("module", "filex")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "module=") {
		t.Errorf("parent picked up child field: %q", buf.String())
	}
	buf.Reset()

	child.Info("from child")
	if !strings.Contains(buf.String(), `module="filex"`) {
		t.Errorf("child output = %q", buf.String())
	}
}

func TestTextFieldsAreSorted(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelInfo)
	logger.Info("x", Fields{"b": 2, "a": 1, "c": 3})
	if !strings.Contains(buf.String(), "[a=1 b=2 c=3]") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestConsoleWithoutColors(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter()
	f.DisableColors = true
	logger := New().WithOutput(&buf).WithFormatter(f)

	logger.Warn("plain")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected escape codes in %q", buf.String())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity", ztkerror.New("bad input").WithCode(ztkerror.CodeValidationFailed), "info"},
		{"high severity", ztkerror.New("bad spec").WithCode(ztkerror.CodeInvalidSpec), "error"},
		{"foreign error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(FormatJSON, LevelTrace)
			logger.LogError(tt.err)
			data := decodeLine(t, buf)
			if data["level"] != tt.level {
				t.Errorf("level = %v, want %v", data["level"], tt.level)
			}
		})
	}
}

func TestLogErrorIncludesDetails(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelTrace)
	logger.LogError(ztkerror.New("charset empty").
		WithCode(ztkerror.CodeInvalidSpec).
		WithOperation("stringx.GenerateUniqueCode").
		WithDetail("field", "charset"))

	data := decodeLine(t, buf)
	if data["error_code"] != "INVALID_SPEC" || data["error_field"] != "charset" {
		t.Errorf("fields = %v", data)
	}
	if _, ok := data["error_details"]; !ok {
		t.Error("error_details missing")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)
	timer := logger.StartTimer("config_reload").WithField("path", "a.toml")
	time.Sleep(time.Millisecond)

	if elapsed := timer.Stop(); elapsed <= 0 {
		t.Errorf("Stop() = %v", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer still running after Stop()")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	data := decodeLine(t, buf)
	if data["message"] != "config_reload completed" || data["operation"] != "config_reload" {
		t.Errorf("timer entry = %v", data)
	}
	if _, ok := data["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestDiscardAndDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(New().WithOutput(&buf).WithLevel(LevelDebug).WithFormat(FormatText))
	Named("timex").Debug("hello")
	if !strings.Contains(buf.String(), "{timex}") {
		t.Errorf("output = %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() == nil {
		t.Error("SetDefault(nil) must keep the previous logger")
	}

	Discard().Error("dropped")
}
