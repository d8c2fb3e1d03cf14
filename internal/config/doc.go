// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources in priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// An optional .env file is loaded into the environment by the main package
// before this package runs, so values placed there behave exactly like
// environment variables. The entry point is [GetConfig].
package config
