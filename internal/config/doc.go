// Package config loads the HCL site configuration: the term-store and
// document-store endpoints plus logging and validation settings. Expressions
// in the file may reference environment variables through the `env` map.
package config
