package volumes

import (
	"context"
	"math"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/metadata"
)

// Wrap builds the polyethylene wrap around the detector: a thin open
// cylinder closed by a top disk whose thickness is the difference between
// the outer and inner heights.
func Wrap(ctx context.Context, dims metadata.WrapDims, mode Mode) (*geo.LogicalVolume, error) {
	tokens := map[string]float64{
		"wrap_outer_height_in_mm":  dims.Outer.HeightInMM,
		"wrap_outer_radius_in_mm":  dims.Outer.RadiusInMM,
		"wrap_inner_radius_in_mm":  dims.Inner.RadiusInMM,
		"wrap_top_thickness_in_mm": dims.Outer.HeightInMM - dims.Inner.HeightInMM,
	}
	if err := metadata.Require("wrap", tokens); err != nil {
		return nil, err
	}
	if mode == ModeFile {
		return loadModel(ctx, "wrap.hcl", tokens, "Wrap")
	}

	reg := geo.NewRegistry()
	hd1000, err := materials.HD1000(reg)
	if err != nil {
		return nil, err
	}

	outerR := dims.Outer.RadiusInMM
	innerR := dims.Inner.RadiusInMM
	outerH := dims.Outer.HeightInMM
	topThk := dims.Outer.HeightInMM - dims.Inner.HeightInMM

	solid := &geo.GenericPolycone{
		Name: "wrap",
		DPhi: 2 * math.Pi,
		R:    []float64{0, outerR, outerR, innerR, innerR},
		Z:    []float64{0, 0, topThk, topThk, outerH},
	}
	return reg.NewLogicalVolume(solid, hd1000, "Wrap")
}
