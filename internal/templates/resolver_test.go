package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemplateDir(t *testing.T, root, name, source string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+Ext), []byte(source), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolverResolve(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "classic", `\documentclass{article}`)

	resolver := NewResolver(root)
	handle, err := resolver.Resolve("classic")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if handle.Name != "classic" {
		t.Fatalf("unexpected name: %q", handle.Name)
	}
	if handle.Source != `\documentclass{article}` {
		t.Fatalf("unexpected source: %q", handle.Source)
	}
	if handle.Dir != filepath.Join(root, "classic") {
		t.Fatalf("unexpected dir: %q", handle.Dir)
	}
}

func TestResolverMissingTemplate(t *testing.T) {
	resolver := NewResolver(t.TempDir())

	_, err := resolver.Resolve("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"classic", "modern-2", "plain_v1"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("expected %q accepted, got %v", name, err)
		}
	}
	for _, name := range []string{"", "  ", "..", "../etc", "a/b", `a\b`, "/abs"} {
		if err := ValidateName(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("expected %q rejected, got %v", name, err)
		}
	}
}
