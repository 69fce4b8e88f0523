// Package config provides configuration loading, merging, and validation
// facilities for the nts client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON or YAML config file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry point is [GetSettings], which also resolves the
// address-family preference, loads the optional trust anchor and assembles
// the immutable [ClientConfig] handed to the NTS-KE phase.
package config
