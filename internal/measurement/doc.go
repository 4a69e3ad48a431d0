// Package measurement parses measurement identifiers of the form
// "<source>_<HSn>_<position>_<id>" and maps the source label to the
// calibration-source geometry it selects. It also hosts the source-frame
// coordinate transform used to position a source relative to the detector.
package measurement
