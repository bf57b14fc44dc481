// Package registry provides a generic, type-safe registry used to hold
// the built-in transformation catalog and its group definitions. Items
// are registered through init() functions and are immutable afterwards.
package registry
