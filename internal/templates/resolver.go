// Package templates locates LaTeX resume templates on disk and manages their
// persisted metadata.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the extension of a template's root markup file.
const Ext = ".tex"

// Handle is a resolved template: its root markup source read into memory and
// the directory used as the include-search root during compilation, so
// relative assets referenced by the template resolve correctly.
type Handle struct {
	Name   string
	Source string
	Dir    string
}

// Resolver maps template names to the filesystem layout
// {root}/{name}/{name}.tex.
type Resolver struct {
	root string
}

// NewResolver constructs a Resolver rooted at the templates directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the templates root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve validates the template name, checks that the root markup file
// exists, and loads it. Missing templates return ErrNotFound.
func (r *Resolver) Resolve(name string) (Handle, error) {
	if err := ValidateName(name); err != nil {
		return Handle{}, err
	}

	dir := filepath.Join(r.root, name)
	path := filepath.Join(dir, name+Ext)

	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Handle{}, ErrNotFound
		}
		return Handle{}, fmt.Errorf("read template %s: %w", name, err)
	}

	return Handle{Name: name, Source: string(source), Dir: dir}, nil
}

// ValidateName rejects names that cannot be used safely as a single directory
// segment. The name is joined into filesystem paths, so traversal segments and
// separators are refused outright.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if strings.Contains(name, "..") {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	if filepath.IsAbs(name) {
		return ErrInvalidName
	}
	return nil
}
