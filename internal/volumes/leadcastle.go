package volumes

import (
	"context"
	"fmt"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/geomfile"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/metadata"
)

// Castle is the shielding around the cryostat. The table-2 configuration
// additionally carries a copper plate under the detector; Copper is nil for
// table 1.
type Castle struct {
	Lead   *geo.LogicalVolume
	Copper *geo.LogicalVolume
}

// LeadCastle builds the shielding for the given measurement table. Table 1
// exists on both paths; table 2 only has a file description.
func LeadCastle(ctx context.Context, table int, dims metadata.CastleDims, mode Mode) (*Castle, error) {
	switch table {
	case 1:
		return leadCastleTable1(ctx, dims, mode)
	case 2:
		if mode == ModeDirect {
			return nil, unimplementedDirect("lead_castle (table 2)")
		}
		return leadCastleTable2(ctx, dims)
	default:
		return nil, fmt.Errorf("%w: lead_castle: table must be 1 or 2, not %d",
			metadata.ErrConfiguration, table)
	}
}

func leadCastleTable1(ctx context.Context, dims metadata.CastleDims, mode Mode) (*Castle, error) {
	tokens := map[string]float64{
		"base_width_1":          dims.Base.Width,
		"base_depth_1":          dims.Base.Depth,
		"base_height_1":         dims.Base.Height,
		"inner_cavity_width_1":  dims.InnerCavity.Width,
		"inner_cavity_depth_1":  dims.InnerCavity.Depth,
		"inner_cavity_height_1": dims.InnerCavity.Height,
		"cavity_width_1":        dims.Cavity.Width,
		"cavity_depth_1":        dims.Cavity.Depth,
		"cavity_height_1":       dims.Cavity.Height,
		"top_width_1":           dims.Top.Width,
		"top_depth_1":           dims.Top.Depth,
		"top_height_1":          dims.Top.Height,
		"front_width_1":         dims.Front.Width,
		"front_depth_1":         dims.Front.Depth,
		"front_height_1":        dims.Front.Height,
	}
	if err := metadata.Require("lead_castle", tokens); err != nil {
		return nil, err
	}
	if mode == ModeFile {
		lead, err := loadModel(ctx, "lead_castle_table1.hcl", tokens, "Lead_castle")
		if err != nil {
			return nil, err
		}
		return &Castle{Lead: lead}, nil
	}

	reg := geo.NewRegistry()
	pb := geo.PredefinedMaterial(materials.LeadG4)

	base := &geo.Box{Name: "base_lead_castle_1", X: dims.Base.Width, Y: dims.Base.Depth, Z: dims.Base.Height}
	innerCavity := &geo.Box{Name: "inner_cavity_base_1", X: dims.InnerCavity.Width, Y: dims.InnerCavity.Depth, Z: dims.InnerCavity.Height}
	cavity := &geo.Box{Name: "cavity_base_1", X: dims.Cavity.Width, Y: dims.Cavity.Depth, Z: dims.Cavity.Height}
	top := &geo.Box{Name: "top_lead_castle_1", X: dims.Top.Width, Y: dims.Top.Depth, Z: dims.Top.Height}
	front := &geo.Box{Name: "front_1", X: dims.Front.Width, Y: dims.Front.Depth, Z: dims.Front.Height}

	// The front cavity sits halfway into the residual depth left between
	// the inner cavity and the base.
	posCavityY := dims.InnerCavity.Depth/2.0 + (dims.Base.Depth-dims.InnerCavity.Depth)/4.0
	posCavityZ := (dims.InnerCavity.Height - dims.Cavity.Height) / 2.0
	totalCavity := &geo.Union{
		Name:   "total_cavity_1",
		First:  innerCavity,
		Second: cavity,
		Trans:  geo.Translate(0, posCavityY, posCavityZ),
	}

	baseCavity := &geo.Subtraction{
		Name:   "base_cavity_1",
		First:  base,
		Second: totalCavity,
		Trans:  geo.Identity,
	}

	posTopZ := -(dims.Base.Height+dims.Top.Height)/2.0 - 0.01
	topBase := &geo.Union{
		Name:   "top_base_1",
		First:  baseCavity,
		Second: top,
		Trans:  geo.Translate(0, 0, posTopZ),
	}

	posFrontY := (dims.Base.Depth+dims.Front.Depth)/2.0 - 0.01
	posFrontZ := (dims.Base.Height - dims.Front.Height) / 2.0
	final := &geo.Union{
		Name:   "final_lead_castle_1",
		First:  topBase,
		Second: front,
		Trans:  geo.Translate(0, posFrontY, posFrontZ),
	}

	lead, err := reg.NewLogicalVolume(final, pb, "Lead_castle")
	if err != nil {
		return nil, err
	}
	return &Castle{Lead: lead}, nil
}

func leadCastleTable2(ctx context.Context, dims metadata.CastleDims) (*Castle, error) {
	tokens := map[string]float64{
		"base_width_2":          dims.Base.Width,
		"base_depth_2":          dims.Base.Depth,
		"base_height_2":         dims.Base.Height,
		"inner_cavity_width_2":  dims.InnerCavity.Width,
		"inner_cavity_depth_2":  dims.InnerCavity.Depth,
		"inner_cavity_height_2": dims.InnerCavity.Height,
		"top_width_2":           dims.Top.Width,
		"top_depth_2":           dims.Top.Depth,
		"top_height_2":          dims.Top.Height,
		"copper_plate_width":    dims.CopperPlate.Width,
		"copper_plate_depth":    dims.CopperPlate.Depth,
		"copper_plate_height":   dims.CopperPlate.Height,
	}
	if err := metadata.Require("lead_castle", tokens); err != nil {
		return nil, err
	}

	// Both volumes come from one parse so they share a registry; placing
	// them into the scene must not duplicate the file's solids.
	src, err := models.ReadFile("models/lead_castle_table2.hcl")
	if err != nil {
		return nil, fmt.Errorf("reading model lead_castle_table2.hcl: %w", err)
	}
	f, err := geomfile.Load(ctx, "lead_castle_table2.hcl", src, tokens)
	if err != nil {
		return nil, err
	}
	lead, err := f.Volume("Lead_castle")
	if err != nil {
		return nil, err
	}
	copper, err := f.Volume("Copper_plate")
	if err != nil {
		return nil, err
	}
	return &Castle{Lead: lead, Copper: copper}, nil
}
