package volumes

import (
	"context"
	"math"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/metadata"
)

// Detector builds the germanium diode itself as a plain cylinder from the
// diode record. The fine crystal geometry (groove, point contact) is out of
// scope here; the cylinder envelope is what the surrounding assemblies are
// positioned against. Direct construction only.
func Detector(ctx context.Context, dims metadata.DiodeGeom) (*geo.LogicalVolume, error) {
	_ = ctx
	if err := metadata.Require("detector", map[string]float64{
		"height_in_mm": dims.HeightInMM,
		"radius_in_mm": dims.RadiusInMM,
	}); err != nil {
		return nil, err
	}

	reg := geo.NewRegistry()
	ge := geo.PredefinedMaterial(materials.Germanium)
	solid := &geo.Tubs{
		Name: "detector",
		RMax: dims.RadiusInMM,
		Dz:   dims.HeightInMM,
		DPhi: 2 * math.Pi,
	}
	return reg.NewLogicalVolume(solid, ge, "Detector")
}
