// Package cli defines the Cobra command for the skillpack CLI. The command
// only handles flag parsing, configuration and output formatting; validation
// and archiving are delegated to the skill and packager packages.
package cli
