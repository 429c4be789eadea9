// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from files.
//
// The `config.Model` carries the field allow-list and the known word
// classes. It is the single source the `app` package builds the annotate
// schema and the lexicon registry from. Concrete loaders, such as the HCL
// one, are provided in separate packages.
package config
