package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		in  string
		key string
		val string
		ok  bool
	}{
		{"PORT=9090", "PORT", "9090", true},
		{`NAME="quoted value"`, "NAME", "quoted value", true},
		{"export LATEX_BIN=xelatex", "LATEX_BIN", "xelatex", true},
		{"  SPACED = padded  ", "SPACED", "padded", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"noequals", "", "", false},
		{"=valueonly", "", "", false},
	}
	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.in)
		if key != tc.key || val != tc.val || ok != tc.ok {
			t.Errorf("parseEnvLine(%q) = %q, %q, %v; want %q, %q, %v",
				tc.in, key, val, ok, tc.key, tc.val, tc.ok)
		}
	}
}

func TestLoadEnvFilesDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=9999\nTEMPLATES_DIR=/from/file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("PORT", "1234")
	// Setenv registers restoration of the original value; Unsetenv then
	// clears it for the duration of the test.
	t.Setenv("TEMPLATES_DIR", "placeholder")
	os.Unsetenv("TEMPLATES_DIR")

	loadEnvFiles(path)

	if got := os.Getenv("PORT"); got != "1234" {
		t.Fatalf("expected environment to win over file, got %q", got)
	}
	if got := os.Getenv("TEMPLATES_DIR"); got != "/from/file" {
		t.Fatalf("expected unset key loaded from file, got %q", got)
	}
}
