// Package cli parses command-line arguments into an app.Config and defines
// the exit-code-carrying error type the entrypoint maps to process exits.
package cli
