package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Namespace represents a `namespace` block: one top-level field accepted in
// annotated text, such as `lang` in `{lang.en:house}`.
type Namespace struct {
	Name string `hcl:"name,label"`
	// Kind is a bare keyword, `singular` or `repeatable`.
	Kind hcl.Expression `hcl:"kind,optional"`
	// Subkeys is any expression convertible to list(string).
	Subkeys hcl.Expression `hcl:"subkeys,optional"`
	Open    *bool          `hcl:"open,optional"`
}

// WordClass represents a `word_class` block, a golongan kata that
// `{meta.gol:...}` fields may refer to.
type WordClass struct {
	ID          string `hcl:"id,label"`
	Name        string `hcl:"name"`
	Description string `hcl:"description,optional"`
}

// File represents the top-level structure of a configuration file. Any
// file may hold any mix of blocks; anything else is a decode error.
type File struct {
	Namespaces  []*Namespace `hcl:"namespace,block"`
	WordClasses []*WordClass `hcl:"word_class,block"`
}
