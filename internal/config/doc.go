// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source's non-zero field is never overridden):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the TUI client and
// [GetServerConfig] for the launch-gate service. Note that the client's
// launch-gate handshake works with no configuration at all: every Gate
// field is an optional override on top of built-in defaults.
package config
