// Package volumes holds the parametric builders, one per physical assembly
// of the test stand. Every builder takes resolved dimension metadata and a
// construction mode: ModeFile parses an embedded shape-description file with
// the dimensions bound as tokens, ModeDirect composes the equivalent solid
// from primitives in code. Both paths yield a volume with the same name,
// material and profile; combinations without a direct implementation return
// ErrUnimplementedPath instead of guessing.
package volumes
