package volumes

import (
	"context"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/metadata"
)

// BottomPlate builds the aluminum plate under the cryostat, with the cable
// cavity cut out of its back half.
func BottomPlate(ctx context.Context, dims metadata.PlateDims, mode Mode) (*geo.LogicalVolume, error) {
	tokens := map[string]float64{
		"bottom_plate_width":         dims.Width,
		"bottom_plate_depth":         dims.Depth,
		"bottom_plate_height":        dims.Height,
		"bottom_cavity_plate_width":  dims.Cavity.Width,
		"bottom_cavity_plate_depth":  dims.Cavity.Depth,
		"bottom_cavity_plate_height": dims.Cavity.Height,
	}
	if err := metadata.Require("bottom_plate", tokens); err != nil {
		return nil, err
	}
	if mode == ModeFile {
		return loadModel(ctx, "bottom_plate.hcl", tokens, "Bottom_plate")
	}

	reg := geo.NewRegistry()
	al, err := materials.Aluminum(reg)
	if err != nil {
		return nil, err
	}

	plate := &geo.Box{Name: "bottom_plate", X: dims.Width, Y: dims.Depth, Z: dims.Height}
	cavity := &geo.Box{Name: "cavity_bottom_plate", X: dims.Cavity.Width, Y: dims.Cavity.Depth, Z: dims.Cavity.Height}
	final := &geo.Subtraction{
		Name:   "final_bottom_plate",
		First:  plate,
		Second: cavity,
		Trans:  geo.Translate(0, dims.Depth/2.0, 0),
	}
	return reg.NewLogicalVolume(final, al, "Bottom_plate")
}
