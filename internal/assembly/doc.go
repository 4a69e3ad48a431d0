// Package assembly composes the per-assembly builders into one placed scene
// graph. Construct builds the selected assemblies in a fixed order, places
// each at an offset derived from the cryostat dimensions and the running
// reference depth, and validates the finished registry. Construction is
// fail-fast: any builder error aborts the call with no partial scene.
package assembly
