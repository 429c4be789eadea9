// Package app contains the core application logic. It wires the loaded
// configuration into a parser and a draft builder, and runs them either
// once over the given input or behind an HTTP server, decoupled from any
// specific entrypoint like a CLI.
package app
