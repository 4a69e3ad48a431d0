// Package app wires the geometry construction together: it owns the logger,
// loads the setup configuration, selects the metadata store, runs the
// orchestrator and optionally writes the resulting scene to disk.
package app
