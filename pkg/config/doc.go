// Package config loads markhtml settings.
//
// Values are layered, later sources winning: the embedded defaults, a user
// config file (TOML or YAML), MARKHTML_* environment variables and finally
// explicit overrides such as command-line flags.
package config
