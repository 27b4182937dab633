// Package config provides configuration loading, merging, and validation
// facilities for the credential loader.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (CREDLOADER_ prefix)
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
