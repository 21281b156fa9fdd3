// Package types defines the experiment box entities, the Logger interface,
// and standard error types for the expbox lifecycle system.
// See docs/ARCHITECTURE.md § Main Interface.
package types
