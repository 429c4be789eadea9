package config

import (
	"github.com/vk/samudra/internal/annotate"
)

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	// Namespaces is the field allow-list in declaration order. When empty,
	// the application falls back to annotate.DefaultSchema.
	Namespaces  []*Namespace
	WordClasses []*WordClass
}

// Namespace is the format-agnostic representation of a `namespace` block.
type Namespace struct {
	Name    string
	Kind    annotate.NamespaceKind
	Subkeys []string
	Open    bool
	// Source is the file the block was declared in, for diagnostics.
	Source string
}

// WordClass is the format-agnostic representation of a `word_class` block.
type WordClass struct {
	ID          string
	Name        string
	Description string
	Source      string
}
