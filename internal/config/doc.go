// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources and merged field by field
// with mergo; the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//
// Fields left empty by every source receive defaults, then the result is
// validated. The entry point is [GetStructuredConfig].
package config
