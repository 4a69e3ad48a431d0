package metadata

import (
	"context"
	"fmt"

	"github.com/vk/hadesgeo/internal/ctxlog"
)

// Origin records which store variant a resolution came from, so callers can
// assert on the mode programmatically instead of scraping logs.
type Origin int

const (
	// OriginAuthoritative means the records came from the authoritative
	// metadata store.
	OriginAuthoritative Origin = iota + 1
	// OriginPlaceholder means the records are public stand-in data.
	OriginPlaceholder
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginAuthoritative:
		return "authoritative"
	case OriginPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// Resolution is the merged dimension metadata for one detector together
// with the origin it was resolved from.
type Resolution struct {
	Diode  *DiodeRecord
	Setup  *SetupRecord
	Origin Origin
}

// Resolve fetches and merges the records for a detector. auth is the
// authoritative store handle, or nil when none is reachable; extra is the
// experiment-specific configuration merged into the diode record. When auth
// is nil, resolution fails with ErrSourceUnavailable unless publicOK was
// explicitly set, in which case the embedded placeholder store is used and
// a loud warning is logged.
func Resolve(ctx context.Context, auth Store, detector string, extra map[string]any, publicOK bool) (*Resolution, error) {
	origin := OriginAuthoritative
	store := auth
	if store == nil {
		if !publicOK {
			return nil, fmt.Errorf("detector %s: %w", detector, ErrSourceUnavailable)
		}
		ctxlog.FromContext(ctx).Warn("CONSTRUCTING GEOMETRY FROM PUBLIC PLACEHOLDER DATA ONLY", "detector", detector)
		store = NewPublicStore()
		origin = OriginPlaceholder
	}

	diode, err := store.Diode(detector)
	if err != nil {
		return nil, fmt.Errorf("resolving diode record for %s: %w", detector, err)
	}
	merged, err := Merge(diode, extra)
	if err != nil {
		return nil, err
	}

	setup, err := store.Setup(detector)
	if err != nil {
		return nil, fmt.Errorf("resolving setup record for %s: %w", detector, err)
	}

	return &Resolution{Diode: merged, Setup: setup, Origin: origin}, nil
}
