// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lexicon

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxWordClassID bounds the length of a word class identifier.
const maxWordClassID = 6

// WordClass is a golongan kata: a grammatical class such as NAMA or KK.
type WordClass struct {
	ID         string `json:"id"`
	Nama       string `json:"nama"`
	Keterangan string `json:"keterangan,omitempty"`
}

// NewWordClass validates and normalizes a word class. The ID is upper-cased
// and the name title-cased.
func NewWordClass(id, nama, keterangan string) (WordClass, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return WordClass{}, fmt.Errorf("word class ID cannot be empty")
	}
	if utf8.RuneCountInString(id) > maxWordClassID {
		return WordClass{}, fmt.Errorf("word class ID %q must be at most %d characters", id, maxWordClassID)
	}
	return WordClass{
		ID:         id,
		Nama:       cases.Title(language.Und).String(strings.TrimSpace(nama)),
		Keterangan: strings.TrimSpace(keterangan),
	}, nil
}

// Registry is the set of known word classes. An empty Registry accepts any
// word class ID.
type Registry struct {
	classes map[string]WordClass
}

// NewRegistry builds a Registry, rejecting duplicate IDs.
func NewRegistry(classes ...WordClass) (*Registry, error) {
	r := &Registry{classes: make(map[string]WordClass, len(classes))}
	for _, wc := range classes {
		if _, dup := r.classes[wc.ID]; dup {
			return nil, fmt.Errorf("word class %q declared more than once", wc.ID)
		}
		r.classes[wc.ID] = wc
	}
	return r, nil
}

// Lookup finds a word class by ID, ignoring case.
func (r *Registry) Lookup(id string) (WordClass, bool) {
	if r == nil {
		return WordClass{}, false
	}
	wc, ok := r.classes[strings.ToUpper(id)]
	return wc, ok
}

// Len returns the number of registered word classes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.classes)
}

// IDs returns the registered IDs in sorted order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := lo.Keys(r.classes)
	slices.Sort(ids)
	return ids
}
