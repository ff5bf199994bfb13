// Package packager turns a validated skill directory into a distributable
// <name>.skill zip archive.
//
// Every archive entry lives under a single top-level folder named after the
// skill. Version control metadata, Python bytecode caches and Finder litter
// (.git/, __pycache__/, *.pyc, .DS_Store) are never packaged. Additional glob
// patterns can be excluded through Options.
package packager
