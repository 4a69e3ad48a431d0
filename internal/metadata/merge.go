package metadata

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// DefaultEnrichment is substituted when a diode record carries no measured
// enrichment value.
const DefaultEnrichment = 0.9

// Merge combines an authoritative diode record with experiment-specific
// extra configuration, returning a new record; the input is never mutated.
// A missing enrichment value is defaulted to DefaultEnrichment. Merge is
// idempotent: merging an already merged record does not re-apply the
// default over a present value or stack the extra configuration.
func Merge(diode *DiodeRecord, extra map[string]any) (*DiodeRecord, error) {
	if diode == nil {
		return nil, fmt.Errorf("%w: nil diode record", ErrConfiguration)
	}

	var merged DiodeRecord
	if err := copier.CopyWithOption(&merged, diode, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copying diode record: %w", err)
	}

	if merged.Production.Enrichment.Val == nil {
		val := DefaultEnrichment
		merged.Production.Enrichment.Val = &val
	}
	merged.Hades = extra
	return &merged, nil
}
