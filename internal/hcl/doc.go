// Package hcl provides the concrete HCL implementation of the `config.Loader`
// interface. It is responsible for file discovery, HCL parsing, translation
// of `schema` blocks into the `config` model, and CTY-to-Go conversion of
// attribute values.
package hcl
