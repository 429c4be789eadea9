// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package annotate

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category labels a matched span of annotated text.
type Category string

const (
	CategoryContent Category = "content"
	CategoryTag     Category = "tag"
	CategoryField   Category = "field"
)

// grammar is tried left to right at every position. Whitespace is matched
// one character at a time ahead of content, so a content run always starts
// on a non-space character and keeps its inner and trailing spaces. The
// whitespace class is the one unicode.IsSpace accepts.
var grammar = regexp.MustCompile(
	`(?P<field>\{[_a-zA-Z]{1,4}\.[_a-zA-Z]{1,3}:[\p{L}\p{M}\p{N}_]+\})` +
		`|(?P<tag>#[\p{L}\p{N}_\-.]+)` +
		`|(?P<space>[\s\p{Z}\x0B\x85])` +
		`|(?P<content>[\p{L}\p{M}\p{N}\s\p{Z}\x0B\x85,.?!$` + "`" + `_*/&~\\+\-%()=]+)`,
)

var (
	fieldGroup   = grammar.SubexpIndex("field")
	tagGroup     = grammar.SubexpIndex("tag")
	contentGroup = grammar.SubexpIndex("content")
)

// Span is a fragment of the input skipped by the grammar.
type Span struct {
	Start int
	End   int
	Text  string
}

// TokenStream holds the spans matched for each category, in input order.
type TokenStream struct {
	// Input is the text as given by the caller.
	Input string
	// Body is the scanned text after NFC normalization. Skipped spans index
	// into it.
	Body   string
	Tokens map[Category][]string
	// Skipped lists the non-whitespace fragments no rule matched.
	Skipped []Span
}

// Tokenize scans text and validates that it holds at most one content run.
// The content run, if present, is stored trimmed.
func Tokenize(text string) (*TokenStream, error) {
	stream := scan(text)
	if err := stream.validate(); err != nil {
		return nil, err
	}
	return stream, nil
}

// scan runs the grammar over text without validating the result.
func scan(text string) *TokenStream {
	body := norm.NFC.String(text)
	stream := &TokenStream{
		Input: text,
		Body:  body,
		Tokens: map[Category][]string{
			CategoryContent: nil,
			CategoryTag:     nil,
			CategoryField:   nil,
		},
	}

	last := 0
	for _, loc := range grammar.FindAllStringSubmatchIndex(body, -1) {
		if gap := body[last:loc[0]]; strings.TrimSpace(gap) != "" {
			stream.Skipped = append(stream.Skipped, Span{Start: last, End: loc[0], Text: gap})
		}
		last = loc[1]

		switch {
		case loc[2*fieldGroup] >= 0:
			stream.append(CategoryField, body[loc[0]:loc[1]])
		case loc[2*tagGroup] >= 0:
			stream.append(CategoryTag, body[loc[0]:loc[1]])
		case loc[2*contentGroup] >= 0:
			stream.append(CategoryContent, body[loc[0]:loc[1]])
		}
	}
	if gap := body[last:]; strings.TrimSpace(gap) != "" {
		stream.Skipped = append(stream.Skipped, Span{Start: last, End: len(body), Text: gap})
	}
	return stream
}

func (s *TokenStream) append(c Category, text string) {
	s.Tokens[c] = append(s.Tokens[c], text)
}

func (s *TokenStream) validate() error {
	contents := s.Tokens[CategoryContent]
	if len(contents) > 1 {
		return ambiguousContentError(s.Input, s.Tokens)
	}
	if len(contents) == 1 {
		contents[0] = strings.TrimSpace(contents[0])
	}
	return nil
}

// Get returns a copy of the spans matched for c.
func (s *TokenStream) Get(c Category) []string {
	return cloneStrings(s.Tokens[c])
}

// Content returns the single trimmed content run. A text made only of tags
// and fields has none, which is reported as ErrMissingContent.
func (s *TokenStream) Content() (string, error) {
	contents := s.Tokens[CategoryContent]
	if len(contents) == 0 {
		return "", missingContentError(s.Input)
	}
	return contents[0], nil
}
