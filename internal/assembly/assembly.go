package assembly

import (
	"context"
	"fmt"

	"github.com/vk/hadesgeo/internal/config"
	"github.com/vk/hadesgeo/internal/ctxlog"
	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
	"github.com/vk/hadesgeo/internal/measurement"
	"github.com/vk/hadesgeo/internal/metadata"
	"github.com/vk/hadesgeo/internal/volumes"
)

// WorldSizeInMM is the full edge length of the cubic world volume (20 m).
const WorldSizeInMM = 20000.0

// Scene is a fully constructed and validated geometry.
type Scene struct {
	Registry *geo.Registry
	// Origin records whether the dimensions came from the authoritative
	// store or from public placeholder data.
	Origin metadata.Origin
}

// Construct builds the scene for one measurement setup. auth is the
// authoritative metadata store, or nil when none is reachable; publicOK
// permits falling back to the embedded placeholder records.
//
// The scene coordinate frame has its origin at the center of the cryostat
// top face, with z growing downward into the cryostat; the shape profiles
// in the description files use the same convention.
func Construct(ctx context.Context, setup *config.Setup, auth metadata.Store, publicOK bool) (*Scene, error) {
	logger := ctxlog.FromContext(ctx)

	meas, err := measurement.Parse(setup.Measurement)
	if err != nil {
		return nil, err
	}
	sourceType, err := meas.SourceType()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", metadata.ErrConfiguration, err)
	}

	res, err := metadata.Resolve(ctx, auth, setup.Detector, extraConfig(setup, meas), publicOK)
	if err != nil {
		return nil, err
	}

	detType, err := metadata.DetectorType(setup.Detector)
	if err != nil {
		return nil, err
	}

	reg := geo.NewRegistry()
	world, err := makeWorld(reg)
	if err != nil {
		return nil, err
	}

	b := &builder{
		ctx:        ctx,
		reg:        reg,
		world:      world,
		setup:      setup,
		meas:       meas,
		sourceType: sourceType,
		detType:    detType,
		res:        res,
		sel:        setup.Selection(),
	}
	if err := b.run(); err != nil {
		return nil, err
	}

	if err := geo.CheckSanity(reg); err != nil {
		return nil, fmt.Errorf("constructed scene is not sane: %w", err)
	}

	logger.Info("Scene constructed.",
		"detector", setup.Detector,
		"source", meas.Source,
		"origin", res.Origin.String(),
		"volumes", reg.LogicalVolumeCount())
	return &Scene{Registry: reg, Origin: res.Origin}, nil
}

// extraConfig is the experiment-specific configuration merged into the
// diode record.
func extraConfig(setup *config.Setup, meas *measurement.Measurement) map[string]any {
	extra := map[string]any{
		"campaign":    setup.Campaign,
		"measurement": setup.Measurement,
		"source":      meas.Source,
		"position":    meas.Position,
	}
	if sp := setup.SourcePosition; sp != nil {
		extra["source_position"] = map[string]any{
			"phi_in_deg": sp.PhiInDeg,
			"r_in_mm":    sp.RInMM,
			"z_in_mm":    sp.ZInMM,
		}
	}
	return extra
}

func makeWorld(reg *geo.Registry) (*geo.LogicalVolume, error) {
	solid := &geo.Box{Name: "world", X: WorldSizeInMM, Y: WorldSizeInMM, Z: WorldSizeInMM}
	vacuum := geo.PredefinedMaterial(materials.Vacuum)
	world, err := reg.NewLogicalVolume(solid, vacuum, "world")
	if err != nil {
		return nil, err
	}
	if err := reg.SetWorld(world); err != nil {
		return nil, err
	}
	return world, nil
}

// builder carries the per-call construction state: the registry being
// filled, the resolved metadata and the volumes placed so far.
type builder struct {
	ctx        context.Context
	reg        *geo.Registry
	world      *geo.LogicalVolume
	setup      *config.Setup
	meas       *measurement.Measurement
	sourceType string
	detType    string
	res        *metadata.Resolution
	sel        map[string]bool

	cryostat *geo.LogicalVolume
	cavity   *geo.LogicalVolume
}

// run builds the selected assemblies in dependency order. Inner assemblies
// (detector, wrap, holder) live in the vacuum cavity; everything else is
// placed directly in the world.
func (b *builder) run() error {
	steps := []struct {
		name  string
		build func() error
	}{
		{"cryostat", b.buildCryostat},
		{"cavity", b.buildCavity},
		{"detector", b.buildDetector},
		{"wrap", b.buildWrap},
		{"holder", b.buildHolder},
		{"bottom_plate", b.buildBottomPlate},
		{"lead_castle", b.buildLeadCastle},
		{"source", b.buildSource},
		{"source_holder", b.buildSourceHolder},
	}
	for _, step := range steps {
		if !b.sel[step.name] {
			continue
		}
		if err := step.build(); err != nil {
			return fmt.Errorf("building %s: %w", step.name, err)
		}
	}
	return nil
}

// inner returns the mother volume for assemblies nested in the cavity,
// falling back outward when the enclosing assemblies were not selected.
func (b *builder) inner() *geo.LogicalVolume {
	if b.cavity != nil {
		return b.cavity
	}
	if b.cryostat != nil {
		return b.cryostat
	}
	return b.world
}

func (b *builder) buildCryostat() error {
	lv, err := volumes.Cryostat(b.ctx, b.res.Setup.Cryostat, volumes.ModeFile)
	if err != nil {
		return err
	}
	if _, err := b.reg.PlaceVolume(lv, b.world, "Cryostat_PV", geo.Identity); err != nil {
		return err
	}
	b.cryostat = lv
	return nil
}

func (b *builder) buildCavity() error {
	mother := b.world
	if b.cryostat != nil {
		mother = b.cryostat
	}
	lv, err := volumes.VacuumCavity(b.ctx, b.res.Setup.Cryostat, b.reg)
	if err != nil {
		return err
	}
	tr := geo.Translate(0, 0, b.res.Setup.Cryostat.PositionCavityFromTop)
	if _, err := b.reg.PlaceVolume(lv, mother, "Cavity_PV", tr); err != nil {
		return err
	}
	b.cavity = lv
	return nil
}

func (b *builder) buildDetector() error {
	lv, err := volumes.Detector(b.ctx, b.res.Diode.Geometry)
	if err != nil {
		return err
	}
	// The detector tube is centered on its origin; drop it so its top face
	// sits at the cavity top.
	tr := geo.Translate(0, 0, b.res.Diode.Geometry.HeightInMM/2.0)
	_, err = b.reg.PlaceVolume(lv, b.inner(), "Detector_PV", tr)
	return err
}

func (b *builder) buildWrap() error {
	lv, err := volumes.Wrap(b.ctx, b.res.Setup.Wrap, volumes.ModeFile)
	if err != nil {
		return err
	}
	// Shift up by the top-disk thickness so the wrap interior starts at
	// the cavity top, flush with the detector.
	topThk := b.res.Setup.Wrap.Outer.HeightInMM - b.res.Setup.Wrap.Inner.HeightInMM
	_, err = b.reg.PlaceVolume(lv, b.inner(), "Wrap_PV", geo.Translate(0, 0, -topThk))
	return err
}

func (b *builder) buildHolder() error {
	lv, err := volumes.Holder(b.ctx, b.res.Setup.Holder, b.detType, volumes.ModeFile)
	if err != nil {
		return err
	}
	_, err = b.reg.PlaceVolume(lv, b.inner(), "Holder_PV", geo.Identity)
	return err
}

func (b *builder) buildBottomPlate() error {
	lv, err := volumes.BottomPlate(b.ctx, b.res.Setup.BottomPlate, volumes.ModeFile)
	if err != nil {
		return err
	}
	// Centered box, placed flush under the cryostat bottom face.
	z := b.res.Setup.Cryostat.Height + b.res.Setup.BottomPlate.Height/2.0
	_, err = b.reg.PlaceVolume(lv, b.world, "Bottom_plate_PV", geo.Translate(0, 0, z))
	return err
}

func (b *builder) buildLeadCastle() error {
	table, err := b.setup.Table()
	if err != nil {
		return err
	}
	dims := b.res.Setup.LeadCastle.Table1
	if table == 2 {
		dims = b.res.Setup.LeadCastle.Table2
	}

	castle, err := volumes.LeadCastle(b.ctx, table, dims, volumes.ModeFile)
	if err != nil {
		return err
	}
	// The castle base is centered on its own origin; center it on the
	// cryostat midplane.
	tr := geo.Translate(0, 0, b.res.Setup.Cryostat.Height/2.0)
	if _, err := b.reg.PlaceVolume(castle.Lead, b.world, "Lead_castle_PV", tr); err != nil {
		return err
	}
	if castle.Copper != nil {
		z := b.res.Setup.Cryostat.Height + dims.CopperPlate.Height/2.0
		if _, err := b.reg.PlaceVolume(castle.Copper, b.world, "Copper_plate_PV", geo.Translate(0, 0, z)); err != nil {
			return err
		}
	}
	return nil
}

// sourcePosition is the explicit source position, or the zero position at
// the cryostat top center when the setup does not carry one.
func (b *builder) sourcePosition() (phi, r, z float64) {
	if sp := b.setup.SourcePosition; sp != nil {
		return sp.PhiInDeg, sp.RInMM, sp.ZInMM
	}
	return 0, 0, 0
}

func (b *builder) buildSource() error {
	dims, ok := b.res.Setup.Sources[b.sourceType]
	if !ok {
		return fmt.Errorf("%w: setup record has no dimensions for source %q",
			metadata.ErrConfiguration, b.sourceType)
	}

	var holderDims *metadata.SourceHolderDims
	if b.sourceType == "th" {
		holderDims = &b.res.Setup.SourceHolder
	}
	lv, err := volumes.Source(b.ctx, b.sourceType, dims, holderDims, volumes.ModeFile)
	if err != nil {
		return err
	}

	phi, r, z := b.sourcePosition()
	// z is the height above the cryostat top face; world z points down.
	pos := measurement.DetectorFrame(phi, r, -z)
	if _, err := b.reg.PlaceVolume(lv, b.world, "Source_PV", geo.Transform{Translation: pos}); err != nil {
		return err
	}

	// The th top measurement stacks lead plates on the cryostat.
	if b.sourceType == "th" && !b.meas.Lateral() {
		plates, err := volumes.ThPlate(b.ctx, dims, volumes.ModeFile)
		if err != nil {
			return err
		}
		tr := geo.Translate(0, 0, -dims.Plates.Height/2.0)
		if _, err := b.reg.PlaceVolume(plates, b.world, "Source_Plates_PV", tr); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) buildSourceHolder() error {
	_, _, z := b.sourcePosition()
	lv, err := volumes.SourceHolder(b.ctx, b.sourceType, b.res.Setup.SourceHolder,
		z, b.meas.Lateral(), volumes.ModeFile)
	if err != nil {
		return err
	}
	// The holder tube is centered; its midpoint sits halfway between the
	// cryostat top and the source.
	_, err = b.reg.PlaceVolume(lv, b.world, "Source_holder_PV", geo.Translate(0, 0, -z/2.0))
	return err
}
