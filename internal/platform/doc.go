// Package platform provides cross-platform filesystem operations: permission
// changes that are a no-op on Windows, and moving a finished file over its
// destination with a copy fallback when a rename is not possible.
package platform
