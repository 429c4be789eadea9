// Package schema declares the gohcl-tagged structs that configuration files
// decode into before being translated into the `config` model.
package schema
