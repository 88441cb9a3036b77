// Package entities registers all entity definitions with the core
// registry. Import this package for its side effects to ensure every
// entity is registered before routes are mounted.
package entities

// This file exists to provide a single import point.
// Each entity file uses init() to register its definitions.
