// Package template defines the template renderer seam used by the markup
// compiler so the engine can be swapped or stubbed in tests.
package template
