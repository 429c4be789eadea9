// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lexicon

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/vk/samudra/internal/annotate"
)

// Field locations the draft reads from.
const (
	metaNamespace = "meta"
	wordClassKey  = "gol"
	langNamespace = "lang"
)

// ErrInvalidDraft marks every draft error caused by the caller's input.
var ErrInvalidDraft = errors.New("invalid konsep draft")

var (
	ErrBlankLemma       = errors.New("lemma cannot be blank")
	ErrMissingWordClass = errors.New("missing word class")
	ErrUnknownWordClass = errors.New("unknown word class")
)

// KataAsing is a foreign-language equivalent of a konsep.
type KataAsing struct {
	Nama   string `json:"nama"`
	Bahasa string `json:"bahasa"`
}

// KonsepDraft is a meaning ready to be attached to a lemma by the storage
// layer: its description, word class, context tags and foreign equivalents.
// KataAsing is grouped by language code in sorted order, not in the order
// the languages first appear in the text; within a language the words keep
// their input order.
type KonsepDraft struct {
	Lemma      string      `json:"lemma"`
	Keterangan string      `json:"keterangan"`
	Golongan   string      `json:"golongan"`
	Cakupan    []string    `json:"cakupan"`
	KataAsing  []KataAsing `json:"kata_asing"`
}

// Builder turns annotated text into konsep drafts.
type Builder struct {
	parser   *annotate.Parser
	registry *Registry
}

// NewBuilder creates a Builder. A nil parser means annotate defaults; a nil
// or empty registry skips the word class lookup.
func NewBuilder(parser *annotate.Parser, registry *Registry) *Builder {
	if parser == nil {
		parser = annotate.NewParser()
	}
	return &Builder{parser: parser, registry: registry}
}

// ParseDraft parses body and drafts a konsep of lemma from it.
func (b *Builder) ParseDraft(lemma, body string) (*KonsepDraft, error) {
	text, err := b.parser.Parse(body)
	if err != nil {
		return nil, err
	}
	return b.Draft(lemma, text)
}

// Draft maps a parsed text onto a konsep of lemma: the content becomes the
// description, `meta.gol` the word class, tags the cakupan and every
// `lang.<code>` value a kata asing in language <code>.
func (b *Builder) Draft(lemma string, text *annotate.Text) (*KonsepDraft, error) {
	lemma = strings.TrimSpace(lemma)
	if lemma == "" {
		return nil, errors.Mark(ErrBlankLemma, ErrInvalidDraft)
	}

	golongan, err := b.wordClass(text.Fields)
	if err != nil {
		return nil, err
	}

	return &KonsepDraft{
		Lemma:      lemma,
		Keterangan: text.Content,
		Golongan:   golongan,
		Cakupan:    slices.Clone(text.Tags),
		KataAsing:  foreignWords(text.Fields),
	}, nil
}

func (b *Builder) wordClass(fields annotate.FieldMap) (string, error) {
	var id string
	switch v := fields[metaNamespace][wordClassKey].(type) {
	case annotate.Scalar:
		id = string(v)
	case annotate.List:
		if len(v) != 1 {
			return "", errors.Mark(
				errors.Wrapf(ErrMissingWordClass, "expected one {%s.%s} value, got %d", metaNamespace, wordClassKey, len(v)),
				ErrInvalidDraft)
		}
		id = v[0]
	default:
		return "", errors.Mark(
			errors.Wrapf(ErrMissingWordClass, "add a {%s.%s:...} field", metaNamespace, wordClassKey),
			ErrInvalidDraft)
	}

	id = strings.ToUpper(id)
	if b.registry.Len() == 0 {
		return id, nil
	}
	wc, ok := b.registry.Lookup(id)
	if !ok {
		return "", errors.Mark(
			errors.Wrapf(ErrUnknownWordClass, "the value %q is not one of %v", id, b.registry.IDs()),
			ErrInvalidDraft)
	}
	return wc.ID, nil
}

// foreignWords flattens the lang namespace, languages sorted by code and
// words in input order.
func foreignWords(fields annotate.FieldMap) []KataAsing {
	langs := fields[langNamespace]
	codes := lo.Keys(langs)
	slices.Sort(codes)

	out := make([]KataAsing, 0, len(codes))
	for _, code := range codes {
		for _, word := range langs[code].Values() {
			out = append(out, KataAsing{Nama: word, Bahasa: code})
		}
	}
	return out
}
