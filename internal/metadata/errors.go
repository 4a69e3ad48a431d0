package metadata

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when no authoritative metadata store is
// reachable and the caller has not explicitly permitted placeholder data.
// This is a deliberate safety guard: building a geometry from incomplete
// stand-in records must never happen silently.
var ErrSourceUnavailable = errors.New("authoritative metadata unavailable and placeholder data not permitted")

// ErrConfiguration marks invalid or incomplete dimension metadata and
// unsupported detector/assembly combinations.
var ErrConfiguration = errors.New("configuration error")

// Require checks that every named dimension a builder depends on is present
// and positive. Records decode absent fields to zero, so zero and negative
// values both indicate a broken record; partial records are an error, never
// silently defaulted.
func Require(assembly string, dims map[string]float64) error {
	for name, v := range dims {
		if v <= 0 {
			return fmt.Errorf("%w: %s: dimension %q missing or non-positive (%v)",
				ErrConfiguration, assembly, name, v)
		}
	}
	return nil
}

// DetectorType derives the detector geometry family from the detector id
// prefix letter.
func DetectorType(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty detector id", ErrConfiguration)
	}
	switch id[0] {
	case 'B':
		return "bege", nil
	case 'V':
		return "icpc", nil
	case 'C':
		return "coax", nil
	case 'P':
		return "ppc", nil
	default:
		return "", fmt.Errorf("%w: unknown detector id prefix %q", ErrConfiguration, id[0])
	}
}
