package conf

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenSet(tokens ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		s[token] = struct{}{}
	}
	return s
}

func TestString2Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]struct{}
	}{
		{name: "empty string", input: "", expected: tokenSet()},
		{name: "single token", input: "cpath", expected: tokenSet("cpath")},
		{name: "surrounding whitespace", input: "a, b ,c", expected: tokenSet("a", "b", "c")},
		{name: "empty tokens dropped", input: ",a,,\t, b,", expected: tokenSet("a", "b")},
		{name: "duplicates collapse", input: "cpath,cpath , cpath", expected: tokenSet("cpath")},
		{name: "unknown names kept", input: "cpath,bogus", expected: tokenSet("cpath", "bogus")},
		{name: "only separators", input: " , ,, ", expected: tokenSet()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := String2Set(tt.input)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("String2Set() mismatch (-want +got):\n%s", diff)
			}
			for token := range result {
				if token == "" || token != strings.TrimSpace(token) {
					t.Errorf("token %q is empty or untrimmed", token)
				}
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	var all OutputFields
	all.SetAll(true)

	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    OutputFields
	}{
		{
			name:     "list replaces defaults",
			input:    "opath, offset",
			expected: OutputFields{OPath: true, Offset: true},
		},
		{
			name:     "empty list turns everything off",
			input:    "",
			expected: OutputFields{},
		},
		{
			name:     "all keyword",
			input:    "all",
			expected: all,
		},
		{
			name:     "all combined with other fields",
			input:    "cpath,all",
			expected: all,
		},
		{
			name:        "unknown field",
			input:       "cpath,bogus",
			expectError: true,
		},
		{
			name:        "names are case sensitive",
			input:       "CPath",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseFields(tt.input)

			if tt.expectError {
				if !errors.Is(err, ErrUnknownFieldName) {
					t.Errorf("expected ErrUnknownFieldName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("parseFields() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFields_ReportsEveryUnknownName(t *testing.T) {
	_, err := parseFields("zeta, cpath, alpha")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.HasSuffix(err.Error(), "alpha, zeta") {
		t.Errorf("expected sorted unknown names in %q", err.Error())
	}
}

func TestNewResultConfig(t *testing.T) {
	config, err := newResultConfig("mr.txt", DefaultFieldList())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := ResultConfig{File: "mr.txt", Fields: DefaultOutputFields()}
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Errorf("newResultConfig() mismatch (-want +got):\n%s", diff)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}
