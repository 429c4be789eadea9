// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package annotate

import (
	"strings"
)

// AnnotationField is a decomposed `{namespace.subkey:value}` token.
type AnnotationField struct {
	Namespace string
	Subkey    string
	Value     string
}

// ParseField splits a raw field token. It checks the token's shape only;
// the allow-list is applied by Schema.NormalizeFields.
func ParseField(token string) (AnnotationField, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "{"), "}")
	key, value, ok := strings.Cut(inner, ":")
	if !ok {
		return AnnotationField{}, malformedFieldError(token, "missing ':' between key and value")
	}
	namespace, subkey, ok := strings.Cut(key, ".")
	if !ok {
		return AnnotationField{}, malformedFieldError(token, "missing '.' between namespace and subkey")
	}
	if namespace == "" || subkey == "" || value == "" {
		return AnnotationField{}, malformedFieldError(token, "namespace, subkey and value must be non-empty")
	}
	return AnnotationField{Namespace: namespace, Subkey: subkey, Value: value}, nil
}

// NormalizeFields folds raw field tokens, in order, into a FieldMap.
//
// A Repeatable namespace appends each value to the List under its subkey. A
// Singular namespace stores a Scalar, and a repeated subkey keeps the last
// value. The first unknown namespace or subkey aborts the fold.
func (s Schema) NormalizeFields(raw []string) (FieldMap, error) {
	fields := make(FieldMap)
	for _, token := range raw {
		f, err := ParseField(token)
		if err != nil {
			return nil, err
		}

		ns, ok := s.Lookup(f.Namespace)
		if !ok {
			return nil, unrecognizedNamespaceError(f.Namespace, s.Names())
		}
		if !ns.Accepts(f.Subkey) {
			return nil, unrecognizedSubkeyError(f.Namespace, f.Subkey, ns.Subkeys)
		}

		subs, ok := fields[ns.Name]
		if !ok {
			subs = make(map[string]FieldValue)
			fields[ns.Name] = subs
		}
		switch ns.Kind {
		case Repeatable:
			list, _ := subs[f.Subkey].(List)
			subs[f.Subkey] = append(list, f.Value)
		default:
			subs[f.Subkey] = Scalar(f.Value)
		}
	}
	return fields, nil
}

// NormalizeFields applies the DefaultSchema.
func NormalizeFields(raw []string) (FieldMap, error) {
	return defaultParser.schema.NormalizeFields(raw)
}
