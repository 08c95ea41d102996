// Package app contains the core application logic for the form runner: it
// wires configuration, logging, form loading, and the interactive prompt
// session together, decoupled from any specific entrypoint like a CLI.
package app
