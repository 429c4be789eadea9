// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package annotate

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/samber/lo"
)

// NamespaceKind decides how repeated values of a namespace are aggregated.
type NamespaceKind int

const (
	// Singular namespaces hold one Scalar per subkey; a repeat overwrites.
	Singular NamespaceKind = iota
	// Repeatable namespaces hold a List per subkey; a repeat appends.
	Repeatable
)

// String returns the keyword used for the kind in configuration files.
func (k NamespaceKind) String() string {
	switch k {
	case Singular:
		return "singular"
	case Repeatable:
		return "repeatable"
	default:
		return fmt.Sprintf("NamespaceKind(%d)", int(k))
	}
}

// ParseNamespaceKind is the inverse of NamespaceKind.String.
func ParseNamespaceKind(s string) (NamespaceKind, error) {
	switch s {
	case "singular":
		return Singular, nil
	case "repeatable":
		return Repeatable, nil
	default:
		return Singular, fmt.Errorf("unknown namespace kind %q, expected 'singular' or 'repeatable'", s)
	}
}

// The grammar bounds what a field token can carry, so a namespace or subkey
// outside these shapes could never be matched.
var (
	namespaceNameRegex = regexp.MustCompile(`^[_a-zA-Z]{1,4}$`)
	subkeyNameRegex    = regexp.MustCompile(`^[_a-zA-Z]{1,3}$`)
)

// Namespace is one top-level field of the allow-list.
type Namespace struct {
	Name string
	Kind NamespaceKind
	// Subkeys lists the accepted sub-fields. Ignored when Open is set.
	Subkeys []string
	// Open namespaces accept any subkey the grammar admits.
	Open bool
}

// Accepts reports whether subkey is allowed under n.
func (n Namespace) Accepts(subkey string) bool {
	if n.Open {
		return true
	}
	return slices.Contains(n.Subkeys, subkey)
}

// Schema is the immutable allow-list the field normalizer checks against.
// The zero Schema accepts no fields.
type Schema struct {
	namespaces []Namespace
	byName     map[string]int
}

// NewSchema validates the namespaces and builds a Schema. Namespace order is
// kept and used when listing accepted names in diagnostics.
func NewSchema(namespaces ...Namespace) (Schema, error) {
	s := Schema{
		namespaces: make([]Namespace, 0, len(namespaces)),
		byName:     make(map[string]int, len(namespaces)),
	}
	for _, ns := range namespaces {
		if !namespaceNameRegex.MatchString(ns.Name) {
			return Schema{}, fmt.Errorf("invalid namespace name %q: must be 1-4 letters or underscores", ns.Name)
		}
		if _, dup := s.byName[ns.Name]; dup {
			return Schema{}, fmt.Errorf("namespace %q declared more than once", ns.Name)
		}
		if ns.Kind != Singular && ns.Kind != Repeatable {
			return Schema{}, fmt.Errorf("namespace %q: invalid kind %v", ns.Name, ns.Kind)
		}
		if !ns.Open && len(ns.Subkeys) == 0 {
			return Schema{}, fmt.Errorf("namespace %q is closed but declares no subkeys", ns.Name)
		}
		for _, sub := range ns.Subkeys {
			if !subkeyNameRegex.MatchString(sub) {
				return Schema{}, fmt.Errorf("namespace %q: invalid subkey %q: must be 1-3 letters or underscores", ns.Name, sub)
			}
		}
		ns.Subkeys = lo.Uniq(ns.Subkeys)
		s.byName[ns.Name] = len(s.namespaces)
		s.namespaces = append(s.namespaces, ns)
	}
	return s, nil
}

// MustSchema is NewSchema for statically known tables.
func MustSchema(namespaces ...Namespace) Schema {
	s, err := NewSchema(namespaces...)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultSchema returns the dictionary's standard allow-list: `meta` holds
// the word class (`gol`) and `lang` holds foreign equivalents under any
// language code.
func DefaultSchema() Schema {
	return MustSchema(
		Namespace{Name: "meta", Kind: Singular, Subkeys: []string{"gol"}},
		Namespace{Name: "lang", Kind: Repeatable, Open: true},
	)
}

// Lookup returns the namespace registered under name.
func (s Schema) Lookup(name string) (Namespace, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Namespace{}, false
	}
	ns := s.namespaces[i]
	ns.Subkeys = slices.Clone(ns.Subkeys)
	return ns, true
}

// Names lists the accepted namespaces in declaration order.
func (s Schema) Names() []string {
	return lo.Map(s.namespaces, func(ns Namespace, _ int) string {
		return ns.Name
	})
}

// Namespaces returns a copy of the schema's namespaces.
func (s Schema) Namespaces() []Namespace {
	return lo.Map(s.namespaces, func(ns Namespace, _ int) Namespace {
		ns.Subkeys = slices.Clone(ns.Subkeys)
		return ns
	})
}
