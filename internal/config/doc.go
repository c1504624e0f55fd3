// Package config loads and validates application configuration from
// struct defaults, an optional YAML file and ROSTER_* environment
// variables, in increasing order of precedence.
package config
