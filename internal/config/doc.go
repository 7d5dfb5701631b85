// Package config provides the configuration for wifiqr: host command
// paths, progress pacing, renderer selection and output preferences.
// Values come from defaults, an optional YAML file and command line flags,
// in increasing order of precedence.
package config
