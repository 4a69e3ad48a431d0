package volumes

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/metadata"
)

// Holder builds the detector holder for the given detector type. Bege
// holders exist on both paths; icpc holders only have a file description.
// Coax and ppc detectors have no holder geometry at all.
func Holder(ctx context.Context, dims metadata.HolderDims, detType string, mode Mode) (*geo.LogicalVolume, error) {
	switch detType {
	case "bege":
		return holderBege(ctx, dims, mode)
	case "icpc":
		if mode == ModeDirect {
			return nil, unimplementedDirect("holder (icpc)")
		}
		return holderICPC(ctx, dims)
	default:
		return nil, fmt.Errorf("%w: cannot construct a holder for detector type %q",
			metadata.ErrConfiguration, detType)
	}
}

func holderBege(ctx context.Context, dims metadata.HolderDims, mode Mode) (*geo.LogicalVolume, error) {
	cyl := dims.Cylinder
	rings := dims.Rings
	tokens := map[string]float64{
		"max_radius_in_mm":        rings.RadiusInMM,
		"outer_height_in_mm":      cyl.Outer.HeightInMM,
		"inner_height_in_mm":      cyl.Inner.HeightInMM,
		"outer_radius_in_mm":      cyl.Outer.RadiusInMM,
		"inner_radius_in_mm":      cyl.Inner.RadiusInMM,
		"position_top_ring_in_mm": rings.PositionTopRingInMM,
		"end_top_ring_in_mm":      rings.PositionTopRingInMM + rings.HeightInMM,
	}
	if err := metadata.Require("holder", tokens); err != nil {
		return nil, err
	}
	if mode == ModeFile {
		return loadModel(ctx, "holder_bege.hcl", tokens, "Holder")
	}

	reg := geo.NewRegistry()
	alloy, err := materials.EnAw2011T8(reg)
	if err != nil {
		return nil, err
	}

	maxR := rings.RadiusInMM
	outerH := cyl.Outer.HeightInMM
	innerH := cyl.Inner.HeightInMM
	outerR := cyl.Outer.RadiusInMM
	innerR := cyl.Inner.RadiusInMM
	posRing := rings.PositionTopRingInMM
	endRing := rings.PositionTopRingInMM + rings.HeightInMM

	// Outline traced along the outer edge going up, then the inner edge
	// going back down.
	solid := &geo.GenericPolycone{
		Name: "holder",
		DPhi: 2 * math.Pi,
		R: []float64{outerR, outerR, maxR, maxR, outerR,
			outerR, outerR, 0, 0, innerR,
			innerR, innerR, innerR},
		Z: []float64{0, posRing, posRing, endRing, endRing,
			innerH, outerH, outerH, innerH, innerH,
			endRing, posRing, 0},
	}
	return reg.NewLogicalVolume(solid, alloy, "Holder")
}

func holderICPC(ctx context.Context, dims metadata.HolderDims) (*geo.LogicalVolume, error) {
	cyl := dims.Cylinder
	bottom := dims.BottomCyl
	rings := dims.Rings
	tokens := map[string]float64{
		"max_radius_in_mm":              rings.RadiusInMM,
		"outer_height_in_mm":            cyl.Outer.HeightInMM,
		"inner_height_in_mm":            cyl.Inner.HeightInMM,
		"outer_radius_in_mm":            cyl.Outer.RadiusInMM,
		"inner_radius_in_mm":            cyl.Inner.RadiusInMM,
		"outer_bottom_cyl_radius_in_mm": bottom.Outer.RadiusInMM,
		"inner_bottom_cyl_radius_in_mm": bottom.Inner.RadiusInMM,
		"edge_height_in_mm":             dims.Edge.HeightInMM,
		"pos_top_ring_in_mm":            rings.PositionTopRingInMM,
		"pos_bottom_ring_in_mm":         rings.PositionBottomRingInMM,
		"end_top_ring_in_mm":            rings.PositionTopRingInMM + rings.HeightInMM,
		"end_bottom_ring_in_mm":         rings.PositionBottomRingInMM + rings.HeightInMM,
		"end_bottom_cyl_outer_in_mm":    cyl.Outer.HeightInMM + bottom.Outer.HeightInMM,
		"end_bottom_cyl_inner_in_mm":    cyl.Inner.HeightInMM + bottom.Inner.HeightInMM,
	}
	if err := metadata.Require("holder", tokens); err != nil {
		return nil, err
	}
	return loadModel(ctx, "holder_icpc.hcl", tokens, "Holder")
}
