// Package config manages user-level settings stored at ~/.skillpack/config.yaml
// and overridable through SKILLPACK_* environment variables: the default
// output directory, extra exclude patterns and the log level and format.
package config
