package measurement

import (
	"fmt"
	"regexp"
	"strings"
)

// Measurement is a parsed measurement identifier. Source is the combined
// isotope + holder label (e.g. "am_HS6"), Position the source position
// ("top", "lat", "bottom"), ID the free-form run identifier.
type Measurement struct {
	Source   string
	Position string
	ID       string
}

// holderLabel matches the "HSn" holder token of a source label.
var holderLabel = regexp.MustCompile(`^HS\d+$`)

// legacyRenames maps historical source labels to their current names. Early
// barium runs were recorded as ba_HS3 before the source was re-seated in
// holder HS4; this is the only rename the grammar carries.
var legacyRenames = map[string]string{
	"ba_HS3": "ba_HS4",
}

// Parse splits a raw measurement identifier. The source label is the first
// two underscore-separated tokens; everything after the position token is
// the run id.
func Parse(raw string) (*Measurement, error) {
	tokens := strings.Split(raw, "_")
	if len(tokens) < 4 {
		return nil, fmt.Errorf("invalid measurement %q: want <source>_<HSn>_<position>_<id>", raw)
	}
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("invalid measurement %q: empty token at position %d", raw, i)
		}
	}
	if !holderLabel.MatchString(tokens[1]) {
		return nil, fmt.Errorf("invalid measurement %q: %q is not a holder label", raw, tokens[1])
	}

	source := tokens[0] + "_" + tokens[1]
	if renamed, ok := legacyRenames[source]; ok {
		source = renamed
	}

	return &Measurement{
		Source:   source,
		Position: tokens[2],
		ID:       strings.Join(tokens[3:], "_"),
	}, nil
}

// sourceGeometries maps a source label to the geometry kind built for it.
var sourceGeometries = map[string]string{
	"am_HS1": "am_collimated",
	"am_HS6": "am",
	"ba_HS4": "ba",
	"co_HS5": "co",
	"th_HS2": "th",
}

// SourceType returns the calibration-source geometry kind for the parsed
// source label.
func (m *Measurement) SourceType() (string, error) {
	kind, ok := sourceGeometries[m.Source]
	if !ok {
		return "", fmt.Errorf("source %q has no defined geometry", m.Source)
	}
	return kind, nil
}

// Lateral reports whether the measurement was taken from the side of the
// cryostat rather than from the top.
func (m *Measurement) Lateral() bool {
	return m.Position == "lat"
}
