package volumes

import (
	"context"
	"math"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/metadata"
)

// Cryostat builds the aluminum vacuum cryostat: a closed cylinder whose
// cavity is bounded by the clearances from the top and bottom faces.
func Cryostat(ctx context.Context, dims metadata.CryostatDims, mode Mode) (*geo.LogicalVolume, error) {
	tokens := map[string]float64{
		"cryostat_height":                      dims.Height,
		"cryostat_width":                       dims.Width,
		"cryostat_thickness":                   dims.Thickness,
		"position_cryostat_cavity_from_top":    dims.PositionCavityFromTop,
		"position_cryostat_cavity_from_bottom": dims.PositionCavityFromBottom,
	}
	if err := metadata.Require("cryostat", tokens); err != nil {
		return nil, err
	}
	if mode == ModeFile {
		return loadModel(ctx, "cryostat.hcl", tokens, "Cryostat")
	}

	reg := geo.NewRegistry()
	alloy, err := materials.EnAw2011T8(reg)
	if err != nil {
		return nil, err
	}

	radius := dims.Width / 2.0
	cavityRadius := (dims.Width - 2*dims.Thickness) / 2.0
	startCavity := dims.PositionCavityFromTop
	endCavity := dims.Height - dims.PositionCavityFromBottom

	solid := &geo.GenericPolycone{
		Name: "cryostat",
		DPhi: 2 * math.Pi,
		R: []float64{0, radius, radius, cavityRadius,
			cavityRadius, 0, 0, radius, radius, 0},
		Z: []float64{0, 0, startCavity, startCavity, endCavity,
			endCavity, endCavity, endCavity, dims.Height, dims.Height},
	}
	return reg.NewLogicalVolume(solid, alloy, "Cryostat")
}

// VacuumCavity builds the evacuated interior of the cryostat directly into
// the given registry. There is no file path for this assembly; the cavity is
// derived entirely from the cryostat dimensions.
func VacuumCavity(ctx context.Context, dims metadata.CryostatDims, reg *geo.Registry) (*geo.LogicalVolume, error) {
	_ = ctx
	if err := metadata.Require("vacuum_cavity", map[string]float64{
		"cryostat_height":                      dims.Height,
		"cryostat_width":                       dims.Width,
		"cryostat_thickness":                   dims.Thickness,
		"position_cryostat_cavity_from_top":    dims.PositionCavityFromTop,
		"position_cryostat_cavity_from_bottom": dims.PositionCavityFromBottom,
	}); err != nil {
		return nil, err
	}

	radius := (dims.Width - 2*dims.Thickness) / 2.0
	height := dims.Height - dims.PositionCavityFromTop - dims.PositionCavityFromBottom

	solid := &geo.GenericPolycone{
		Name: "vacuum_cavity",
		DPhi: 2 * math.Pi,
		R:    []float64{0, radius, radius, 0},
		Z:    []float64{0, 0, height, height},
	}
	vacuum := geo.PredefinedMaterial(materials.Vacuum)
	return reg.NewLogicalVolume(solid, vacuum, "cavity_lv")
}
