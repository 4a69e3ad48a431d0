package volumes

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/geomfile"
)

// Mode selects how a builder constructs its volume.
type Mode int

const (
	// ModeFile parses the assembly's embedded shape-description file.
	ModeFile Mode = iota
	// ModeDirect composes the solid from primitives in code.
	ModeDirect
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeDirect:
		return "direct"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ErrUnimplementedPath is returned when an assembly has no direct
// construction; the file path always works for these.
var ErrUnimplementedPath = errors.New("no direct construction for this assembly")

func unimplementedDirect(assembly string) error {
	return fmt.Errorf("%w: %s: use the file path instead", ErrUnimplementedPath, assembly)
}

//go:embed models/*.hcl
var models embed.FS

// loadModel parses an embedded shape-description file with the given tokens
// bound and returns the requested logical volume. The volume lives in the
// file's own registry until a placement adopts it.
func loadModel(ctx context.Context, name string, dims map[string]float64, volume string) (*geo.LogicalVolume, error) {
	src, err := models.ReadFile("models/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", name, err)
	}
	f, err := geomfile.Load(ctx, name, src, dims)
	if err != nil {
		return nil, err
	}
	return f.Volume(volume)
}
