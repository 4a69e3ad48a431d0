package volumes

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/metadata"
)

// Source builds a calibration source. Only file descriptions exist for the
// sources; ModeDirect returns ErrUnimplementedPath. The th source sits in a
// copper holder, so its dimensions are needed too.
func Source(ctx context.Context, sourceType string, dims metadata.SourceDims, holder *metadata.SourceHolderDims, mode Mode) (*geo.LogicalVolume, error) {
	if mode == ModeDirect {
		return nil, unimplementedDirect("source (" + sourceType + ")")
	}

	var tokens map[string]float64
	switch sourceType {
	case "am_collimated":
		tokens = map[string]float64{
			"source_height":          dims.Height,
			"source_width":           dims.Width,
			"source_capsule_height":  dims.Capsule.Height,
			"source_capsule_width":   dims.Capsule.Width,
			"window_source":          dims.Collimator.Window,
			"collimator_height":      dims.Collimator.Height,
			"collimator_depth":       dims.Collimator.Depth,
			"collimator_width":       dims.Collimator.Width,
			"collimator_beam_height": dims.Collimator.BeamHeight,
			"collimator_beam_width":  dims.Collimator.BeamWidth,
		}
	case "am":
		tokens = map[string]float64{
			"source_height":         dims.Height,
			"source_width":          dims.Width,
			"source_capsule_height": dims.Capsule.Height,
			"source_capsule_width":  dims.Capsule.Width,
			"source_capsule_depth":  dims.Capsule.Depth,
		}
	case "ba", "co":
		tokens = map[string]float64{
			"source_height":            dims.Height,
			"source_width":             dims.Width,
			"source_foil_height":       dims.Foil.Height,
			"source_al_ring_height":    dims.AlRing.Height,
			"source_al_ring_width_min": dims.AlRing.WidthMin,
			"source_al_ring_width_max": dims.AlRing.WidthMax,
		}
	case "th":
		if holder == nil {
			return nil, fmt.Errorf("%w: source (th): copper holder dimensions required",
				metadata.ErrConfiguration)
		}
		tokens = map[string]float64{
			"source_height":                  dims.Height,
			"source_width":                   dims.Width,
			"source_capsule_height":          dims.Capsule.Height,
			"source_capsule_width":           dims.Capsule.Width,
			"source_epoxy_height":            dims.Epoxy.Height,
			"source_epoxy_width":             dims.Epoxy.Width,
			"cu_source_holder_height":        holder.Copper.Height,
			"cu_source_holder_width":         holder.Copper.Width,
			"cu_source_holder_cavity_width":  holder.Copper.CavityWidth,
			"cu_source_holder_bottom_height": holder.Copper.BottomHeight,
			"cu_source_holder_bottom_width":  holder.Copper.BottomWidth,
			"source_offset_height":           dims.OffsetHeight,
		}
	default:
		return nil, fmt.Errorf("%w: source type %q is not defined",
			metadata.ErrConfiguration, sourceType)
	}

	if err := metadata.Require("source", tokens); err != nil {
		return nil, err
	}
	return loadModel(ctx, "source_"+sourceType+".hcl", tokens, "Source")
}

// ThPlate builds the lead plate stack the th source sits on.
func ThPlate(ctx context.Context, dims metadata.SourceDims, mode Mode) (*geo.LogicalVolume, error) {
	tokens := map[string]float64{
		"source_plates_height":       dims.Plates.Height,
		"source_plates_width":        dims.Plates.Width,
		"source_plates_cavity_width": dims.Plates.CavityWidth,
	}
	if err := metadata.Require("source_plates", tokens); err != nil {
		return nil, err
	}
	if mode == ModeFile {
		return loadModel(ctx, "source_th_plates.hcl", tokens, "Source_Plates")
	}

	reg := geo.NewRegistry()
	pb := geo.PredefinedMaterial(materials.LeadG4)
	solid := &geo.Tubs{
		Name: "source_plates",
		RMin: dims.Plates.CavityWidth / 2.0,
		RMax: dims.Plates.Width / 2.0,
		Dz:   dims.Plates.Height,
		DPhi: 2 * math.Pi,
	}
	return reg.NewLogicalVolume(solid, pb, "Source_Plates")
}

// SourceHolder builds the acrylic holder positioning a source above (or,
// for the lateral th measurement, beside) the cryostat. sourceZ is the
// source height above the cryostat top face; it is a placement coordinate,
// not a record dimension, so zero (source resting on the cryostat) is
// valid. File path only.
func SourceHolder(ctx context.Context, sourceType string, dims metadata.SourceHolderDims, sourceZ float64, lateral bool, mode Mode) (*geo.LogicalVolume, error) {
	if mode == ModeDirect {
		return nil, unimplementedDirect("source_holder (" + sourceType + ")")
	}
	if sourceZ < 0 {
		return nil, fmt.Errorf("%w: source_holder: source position %v is below the cryostat top face",
			metadata.ErrConfiguration, sourceZ)
	}

	var (
		model  string
		tokens map[string]float64
	)
	switch {
	case sourceType == "th" && lateral:
		model = "source_holder_th_lat.hcl"
		tokens = map[string]float64{
			"cavity_source_holder_height": dims.Source.CavityHeight,
			"source_holder_height":        dims.Source.Height,
			"source_holder_outer_width":   dims.OuterWidth,
			"source_holder_inner_width":   dims.InnerWidth,
			"cavity_source_holder_width":  dims.HolderWidth,
		}
	case sourceType == "am":
		model = "source_holder_am.hcl"
		tokens = map[string]float64{
			"source_holder_top_height":         dims.Source.TopHeight,
			"source_holder_top_plate_height":   dims.Source.TopPlateHeight,
			"source_holder_top_plate_width":    dims.Source.TopPlateWidth,
			"source_holder_top_plate_depth":    dims.Source.TopPlateDepth,
			"source_holder_top_bottom_height":  dims.Source.TopBottomHeight,
			"source_holder_top_inner_width":    dims.Source.TopInnerWidth,
			"source_holder_top_inner_depth":    dims.Source.TopInnerDepth,
			"source_holder_inner_width":        dims.InnerWidth,
			"source_holder_bottom_inner_width": dims.Source.BottomInnerWidth,
			"source_holder_outer_width":        dims.OuterWidth,
		}
	case sourceType == "am_collimated" || sourceType == "ba" ||
		sourceType == "co" || sourceType == "th":
		model = "source_holder.hcl"
		tokens = map[string]float64{
			"source_holder_top_plate_height":   dims.Source.TopPlateHeight,
			"source_holder_top_height":         dims.Source.TopHeight,
			"source_holder_top_bottom_height":  dims.Source.TopBottomHeight,
			"source_holder_top_plate_width":    dims.Source.TopPlateWidth,
			"source_holder_top_inner_width":    dims.Source.TopInnerWidth,
			"source_holder_inner_width":        dims.InnerWidth,
			"source_holder_bottom_inner_width": dims.Source.BottomInnerWidth,
			"source_holder_outer_width":        dims.OuterWidth,
		}
	default:
		return nil, fmt.Errorf("%w: source type %q has no holder",
			metadata.ErrConfiguration, sourceType)
	}

	if err := metadata.Require("source_holder", tokens); err != nil {
		return nil, err
	}
	// The standoff is bound after the record check: unlike the record
	// dimensions it may legitimately be zero.
	tokens["position_source_from_cryostat_z"] = sourceZ
	return loadModel(ctx, model, tokens, "Source_holder")
}
