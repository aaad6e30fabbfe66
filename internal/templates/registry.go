package templates

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"resume-builder/internal/shared/telemetry"
)

// Registry keeps the set of templates present under the templates root. The
// set is rebuilt on startup and kept current by watching the root directory,
// so the list endpoint never has to walk the filesystem per request.
type Registry struct {
	root    string
	mu      sync.RWMutex
	names   map[string]struct{}
	watcher *fsnotify.Watcher
}

// NewRegistry scans the templates root and returns a populated Registry.
func NewRegistry(root string) (*Registry, error) {
	r := &Registry{
		root:  root,
		names: make(map[string]struct{}),
	}
	if err := r.Rescan(); err != nil {
		return nil, err
	}
	return r, nil
}

// Rescan rebuilds the template set from the filesystem. A directory counts as
// a template when it contains its root markup file {name}/{name}.tex.
func (r *Registry) Rescan() error {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return err
	}

	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ValidateName(name) != nil {
			continue
		}
		if _, err := os.Stat(filepath.Join(r.root, name, name+Ext)); err == nil {
			names[name] = struct{}{}
		}
	}

	r.mu.Lock()
	r.names = names
	r.mu.Unlock()
	return nil
}

// Has reports whether a template with the given name is present on disk.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.names[name]
	return ok
}

// List returns the available template names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Watch starts monitoring the templates root and rescans on changes until the
// context is canceled. Template directories are watched individually as well:
// installing a template creates the directory before the markup file lands in
// it, and the root watch does not see into subdirectories. Rescanning on every
// event keeps the logic simple; template installs are rare.
func (r *Registry) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(r.root); err != nil {
		watcher.Close()
		return err
	}
	if entries, err := os.ReadDir(r.root); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				_ = watcher.Add(filepath.Join(r.root, entry.Name()))
			}
		}
	}
	r.watcher = watcher

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !rescanOp(event.Op) {
					continue
				}
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = watcher.Add(event.Name)
					}
				}
				if err := r.Rescan(); err != nil {
					telemetry.Error("templates.rescan", map[string]any{
						"root":  r.root,
						"error": err.Error(),
					})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				telemetry.Error("templates.watch", map[string]any{
					"root":  r.root,
					"error": err.Error(),
				})
			}
		}
	}()

	return nil
}

// rescanOp reports whether a watcher event can change the template set.
// Writes count: the markup file arriving in a freshly created directory is
// what turns that directory into a template.
func rescanOp(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
