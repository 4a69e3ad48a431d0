package geomfile

import (
	"fmt"
)

// SubstitutionError reports a dimension token referenced by a description
// file with no value supplied by the caller.
type SubstitutionError struct {
	File  string
	Token string
}

// Error implements the error interface.
func (e *SubstitutionError) Error() string {
	return fmt.Sprintf("%s: no value for dimension token %q", e.File, e.Token)
}
