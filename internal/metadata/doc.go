// Package metadata resolves detector and test-stand dimension records. It
// defines the lookup capability ("detector-dimension lookup by id") as the
// Store interface with two variants: a file-backed authoritative store and
// an embedded placeholder store for public use. Selecting the placeholder
// variant is always an explicit caller decision, never type inference.
package metadata
