// Package config loads stride's configuration.
//
// # Overview
//
// Configuration lives in ~/.config/stride/config.toml:
//
//	api_url = "http://127.0.0.1:8000/api"
//	plan_id = 1
//
// Both keys are optional; missing files and missing keys fall back to the
// defaults above. The STRIDE_API_URL environment variable overrides
// api_url regardless of the file, which keeps one-off runs against a
// different backend deployment trivial.
//
// The API base URL keeps its path component (typically /api) so a
// reverse-proxied backend works without extra configuration.
//
// # Error Handling
//
// A missing config file is not an error. An unreadable or unparsable file
// is, because silently ignoring a config the user wrote would be worse
// than failing at startup.
package config
