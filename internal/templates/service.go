package templates

import (
	"context"
	"strings"
)

// Service contains business logic for template metadata.
type Service struct {
	Repo     Repo
	Registry *Registry
}

// ListedTemplate is a metadata record annotated with whether the template's
// markup is actually present on disk.
type ListedTemplate struct {
	Template
	Available bool
}

// List returns all template records, marking availability from the registry.
// Records whose markup was removed from disk stay listed so the mismatch is
// visible rather than silently hidden.
func (s *Service) List(ctx context.Context) ([]ListedTemplate, error) {
	records, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ListedTemplate, 0, len(records))
	for _, tpl := range records {
		out = append(out, ListedTemplate{
			Template:  tpl,
			Available: s.Registry != nil && s.Registry.Has(tpl.Slug),
		})
	}
	return out, nil
}

// Update applies a partial update to a template record. The id is required
// along with at least one updatable field.
func (s *Service) Update(ctx context.Context, id string, name, description *string) (Template, error) {
	if strings.TrimSpace(id) == "" {
		return Template{}, ErrInvalidInput
	}
	if name == nil && description == nil {
		return Template{}, ErrInvalidInput
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return Template{}, ErrInvalidInput
	}
	return s.Repo.Update(ctx, id, name, description)
}
