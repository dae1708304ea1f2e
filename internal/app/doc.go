// Package app wires configuration, the API client, the plan store, and the
// terminal UI into a running stride application.
package app
