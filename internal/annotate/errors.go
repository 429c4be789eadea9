// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package annotate

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorKind classifies a MalformedInputError.
type ErrorKind string

const (
	KindAmbiguousContent      ErrorKind = "ambiguous_content"
	KindMissingContent        ErrorKind = "missing_content"
	KindUnrecognizedNamespace ErrorKind = "unrecognized_namespace"
	KindUnrecognizedSubkey    ErrorKind = "unrecognized_subkey"
	KindMalformedField        ErrorKind = "malformed_field"
	KindUnexpectedCharacter   ErrorKind = "unexpected_character"
)

// Sentinels for errors.Is. Every *MalformedInputError matches
// ErrMalformedInput plus the sentinel of its own kind.
var (
	ErrMalformedInput        = errors.New("malformed input")
	ErrAmbiguousContent      = errors.New("ambiguous content")
	ErrMissingContent        = errors.New("missing content")
	ErrUnrecognizedNamespace = errors.New("unrecognized namespace")
	ErrUnrecognizedSubkey    = errors.New("unrecognized subkey")
	ErrMalformedField        = errors.New("malformed field")
	ErrUnexpectedCharacter   = errors.New("unexpected character")
)

var kindSentinels = map[ErrorKind]error{
	KindAmbiguousContent:      ErrAmbiguousContent,
	KindMissingContent:        ErrMissingContent,
	KindUnrecognizedNamespace: ErrUnrecognizedNamespace,
	KindUnrecognizedSubkey:    ErrUnrecognizedSubkey,
	KindMalformedField:        ErrMalformedField,
	KindUnexpectedCharacter:   ErrUnexpectedCharacter,
}

// contentSeparator joins ambiguous content spans in diagnostics.
const contentSeparator = "<?> "

// MalformedInputError reports annotated text that cannot be parsed without
// guessing the author's intent. The JSON form is the payload handed to API
// clients, so every field is tagged.
type MalformedInputError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	// Body is the original input text.
	Body string `json:"body,omitempty"`

	// Set for ambiguous content.
	Count   int      `json:"count,omitempty"`
	Content string   `json:"content,omitempty"`
	Spans   []string `json:"spans,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Fields  []string `json:"fields,omitempty"`

	// Set for field and character errors: the offending value and, when an
	// allow-list applies, what would have been accepted.
	Value    string   `json:"value,omitempty"`
	Accepted []string `json:"accepted,omitempty"`
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return e.Message
}

// Is lets errors.Is match the package sentinels.
func (e *MalformedInputError) Is(target error) bool {
	if target == ErrMalformedInput {
		return true
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// AsMalformedInput unwraps err into a *MalformedInputError.
func AsMalformedInput(err error) (*MalformedInputError, bool) {
	var mie *MalformedInputError
	if errors.As(err, &mie) {
		return mie, true
	}
	return nil, false
}

func ambiguousContentError(body string, tokens map[Category][]string) *MalformedInputError {
	spans := tokens[CategoryContent]
	return &MalformedInputError{
		Kind: KindAmbiguousContent,
		Message: fmt.Sprintf(
			"found %d texts, expected 1: unexpected character(s) split the text\nparsed:   %s\nreceived: %s",
			len(spans), strings.Join(spans, contentSeparator), body),
		Body:    body,
		Count:   len(spans),
		Content: strings.Join(spans, contentSeparator),
		Spans:   cloneStrings(spans),
		Tags:    cloneStrings(tokens[CategoryTag]),
		Fields:  cloneStrings(tokens[CategoryField]),
	}
}

func missingContentError(body string) *MalformedInputError {
	return &MalformedInputError{
		Kind:    KindMissingContent,
		Message: "found 0 texts, expected 1",
		Body:    body,
	}
}

func unexpectedCharacterError(body, fragment string) *MalformedInputError {
	return &MalformedInputError{
		Kind:    KindUnexpectedCharacter,
		Message: fmt.Sprintf("unexpected character(s) %q in text", fragment),
		Body:    body,
		Value:   fragment,
	}
}

func unrecognizedNamespaceError(namespace string, accepted []string) *MalformedInputError {
	return &MalformedInputError{
		Kind:     KindUnrecognizedNamespace,
		Message:  fmt.Sprintf("field %q not expected, only %v are expected", namespace, accepted),
		Value:    namespace,
		Accepted: accepted,
	}
}

func unrecognizedSubkeyError(namespace, subkey string, accepted []string) *MalformedInputError {
	return &MalformedInputError{
		Kind:     KindUnrecognizedSubkey,
		Message:  fmt.Sprintf("field %q not expected in %q, only %v are expected", subkey, namespace, accepted),
		Value:    subkey,
		Accepted: accepted,
	}
}

func malformedFieldError(token, reason string) *MalformedInputError {
	return &MalformedInputError{
		Kind:    KindMalformedField,
		Message: fmt.Sprintf("malformed field %q: %s", token, reason),
		Value:   token,
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
