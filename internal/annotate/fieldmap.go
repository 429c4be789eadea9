// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package annotate

import (
	"encoding/json"
	"fmt"
	"slices"
)

// FieldValue is the value stored under a namespace subkey: either a Scalar
// or a List. Callers switch on the concrete type.
type FieldValue interface {
	// Values returns the value as a fresh slice: one element for a Scalar.
	Values() []string
	isFieldValue()
}

// Scalar is the value of a subkey in a Singular namespace.
type Scalar string

// List is the ordered value of a subkey in a Repeatable namespace.
type List []string

func (s Scalar) Values() []string { return []string{string(s)} }
func (Scalar) isFieldValue()       {}

func (l List) Values() []string { return slices.Clone([]string(l)) }
func (List) isFieldValue()       {}

// FieldMap maps namespace to subkey to value. It marshals to plain JSON,
// e.g. {"meta":{"gol":"NAMA"},"lang":{"en":["concept","test"]}}.
type FieldMap map[string]map[string]FieldValue

// Scalar returns the scalar stored at namespace.subkey.
func (m FieldMap) Scalar(namespace, subkey string) (string, bool) {
	v, ok := m[namespace][subkey].(Scalar)
	return string(v), ok
}

// List returns a copy of the list stored at namespace.subkey.
func (m FieldMap) List(namespace, subkey string) ([]string, bool) {
	v, ok := m[namespace][subkey].(List)
	if !ok {
		return nil, false
	}
	return v.Values(), true
}

// UnmarshalJSON decodes strings into Scalar and arrays into List.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FieldMap, len(raw))
	for ns, subs := range raw {
		out[ns] = make(map[string]FieldValue, len(subs))
		for sub, msg := range subs {
			var s string
			if err := json.Unmarshal(msg, &s); err == nil {
				out[ns][sub] = Scalar(s)
				continue
			}
			var l []string
			if err := json.Unmarshal(msg, &l); err != nil {
				return fmt.Errorf("field %s.%s: expected string or list of strings: %w", ns, sub, err)
			}
			out[ns][sub] = List(l)
		}
	}
	*m = out
	return nil
}
