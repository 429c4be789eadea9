// This file translates the HCL schema structs into the format-agnostic
// configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/vk/samudra/internal/config"
	"github.com/vk/samudra/internal/schema"
)

// translateNamespace converts a `namespace` block into the agnostic model.
func (l *Loader) translateNamespace(ctx context.Context, s *schema.Namespace, file string) (*config.Namespace, error) {
	kind, err := kindExprToNamespaceKind(ctx, s.Kind)
	if err != nil {
		return nil, fmt.Errorf("in %s, namespace '%s': %w", file, s.Name, err)
	}

	subkeys, err := decodeStringList(ctx, s.Subkeys)
	if err != nil {
		return nil, fmt.Errorf("in %s, namespace '%s': invalid subkeys: %w", file, s.Name, err)
	}

	open := false
	if s.Open != nil {
		open = *s.Open
	}

	return &config.Namespace{
		Name:    s.Name,
		Kind:    kind,
		Subkeys: subkeys,
		Open:    open,
		Source:  file,
	}, nil
}

// translateWordClass converts a `word_class` block into the agnostic model.
func (l *Loader) translateWordClass(s *schema.WordClass, file string) *config.WordClass {
	return &config.WordClass{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Source:      file,
	}
}
