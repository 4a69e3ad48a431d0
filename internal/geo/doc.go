// Package geo implements the in-memory geometry object model: solids,
// materials, logical and physical volumes, and the registry that owns them.
// All lengths are millimeters and all angles are radians. A registry is
// built up by exactly one construction pass and is not mutated afterwards.
package geo
