package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"fmm-output"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	tmpDir := t.TempDir()
	document := filepath.Join(tmpDir, "config.xml")
	if err := os.WriteFile(document, []byte(`<config><output><file>doc.txt</file><fields>ep,tp</fields></output></config>`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tests := []struct {
		name        string
		args        []string
		expectError string
		contains    []string
	}{
		{
			name:     "valid options",
			args:     []string{"--output", "mr.txt", "--output_fields", "cpath,spdist"},
			contains: []string{"mr.txt", "output configuration is valid"},
		},
		{
			name:     "document",
			args:     []string{"--config", document},
			contains: []string{"doc.txt", "output configuration is valid"},
		},
		{
			name:        "unsatisfied dependency",
			args:        []string{"--output", "mr.txt", "--output_fields", "spdist,speed"},
			expectError: "speed requires duration",
		},
		{
			name:        "unknown field",
			args:        []string{"--output", "mr.txt", "--output_fields", "cpath,bogus"},
			expectError: "bogus",
		},
		{
			name:        "missing output",
			args:        []string{},
			expectError: "--output is not set",
		},
		{
			name:        "bad log level",
			args:        []string{"--log-level", "loud", "--output", "mr.txt"},
			expectError: "unknown log level",
		},
		{
			name:     "help lists the output fields",
			args:     []string{"--help"},
			contains: []string{"OUTPUT FIELDS", "--output_fields (optional)", "duration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, tt.args...)

			if tt.expectError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectError) {
					t.Errorf("expected error containing %q, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in output:\n%s", want, out)
				}
			}
		})
	}
}

func TestRun_ReportsViolationsOnce(t *testing.T) {
	_, logs, err := runApp(t, "--output", "", "--output_fields", "speed")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	for _, want := range []string{"output file is not set", "speed requires spdist and duration"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in error %q", want, err.Error())
		}
		if strings.Contains(logs, want) {
			t.Errorf("violation %q was also logged:\n%s", want, logs)
		}
	}
}

func TestSetColor(t *testing.T) {
	c := color.New(color.FgRed)
	c.EnableColor()

	var buf bytes.Buffer
	setColor(c, &buf)

	if got := c.Sprint("failed"); got != "failed" {
		t.Errorf("expected plain text for a non-terminal writer, got %q", got)
	}
}

func TestIndent(t *testing.T) {
	if got := indent("a\nb\n", "  "); got != "  a\n  b\n" {
		t.Errorf("indent() = %q", got)
	}
}
