// Package config provides configuration loading, merging, and validation
// facilities for the amnplus client.
//
// Configuration is assembled from multiple sources. A field takes the value
// of the first source that sets it:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
