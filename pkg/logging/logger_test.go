// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(42):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Writer: &buf})

	logger.Debug("filtered")
	logger.Info("filtered")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "filtered") {
		t.Errorf("expected debug/info filtered out, got: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("expected warn message, got: %s", out)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{JSON: true, Service: "test", Writer: &buf})

	logger.Info("run complete", "population", 100)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "run complete" {
		t.Errorf("expected msg attribute, got %v", entry["msg"])
	}
	if entry["service"] != "test" {
		t.Errorf("expected service attribute, got %v", entry["service"])
	}
	if entry["population"] != float64(100) {
		t.Errorf("expected population attribute, got %v", entry["population"])
	}
}

func TestNew_QuietDiscards(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Quiet: true, Writer: &buf})

	logger.Error("should vanish")

	if buf.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", buf.String())
	}
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{JSON: true, Writer: &buf})

	child := logger.With("run_id", "abc123")
	child.Info("step")

	if !strings.Contains(buf.String(), "abc123") {
		t.Errorf("expected run_id attribute, got %q", buf.String())
	}

	// Parent is unaffected.
	buf.Reset()
	logger.Info("parent")
	if strings.Contains(buf.String(), "abc123") {
		t.Errorf("parent logger should not carry child attributes: %q", buf.String())
	}
}
