package metadata

// Length fields are millimeters throughout. Required dimensions are strictly
// positive; a zero value means the field was absent from the record.

// DiodeRecord is the authoritative description of a single germanium diode.
type DiodeRecord struct {
	Name       string     `yaml:"name"`
	Production Production `yaml:"production"`
	Geometry   DiodeGeom  `yaml:"geometry"`

	// Hades carries the experiment-specific configuration merged in by
	// Merge; it is never part of the stored record.
	Hades map[string]any `yaml:"-"`
}

// Production holds manufacturing metadata for a diode.
type Production struct {
	Enrichment Enrichment `yaml:"enrichment"`
	Order      int        `yaml:"order"`
	Slice      string     `yaml:"slice"`
}

// Enrichment is the Ge-76 enrichment fraction. Val is a pointer so that an
// absent value can be told apart from zero and defaulted exactly once.
type Enrichment struct {
	Val *float64 `yaml:"val"`
	Unc float64  `yaml:"unc"`
}

// DiodeGeom is the subset of diode geometry the builders need.
type DiodeGeom struct {
	HeightInMM float64 `yaml:"height_in_mm"`
	RadiusInMM float64 `yaml:"radius_in_mm"`
}

// SetupRecord is the per-detector test-stand record: dimensions of every
// assembly surrounding the diode.
type SetupRecord struct {
	Name         string                `yaml:"name"`
	Cryostat     CryostatDims          `yaml:"cryostat"`
	Wrap         WrapDims              `yaml:"wrap"`
	Holder       HolderDims            `yaml:"holder"`
	BottomPlate  PlateDims             `yaml:"bottom_plate"`
	LeadCastle   CastleTables          `yaml:"lead_castle"`
	Sources      map[string]SourceDims `yaml:"sources"`
	SourceHolder SourceHolderDims      `yaml:"source_holder"`
}

// CryostatDims describes the vacuum cryostat; the cavity position fields
// are measured from the cryostat top and bottom faces.
type CryostatDims struct {
	Height                   float64 `yaml:"height"`
	Width                    float64 `yaml:"width"`
	Thickness                float64 `yaml:"thickness"`
	PositionCavityFromTop    float64 `yaml:"position_cavity_from_top"`
	PositionCavityFromBottom float64 `yaml:"position_cavity_from_bottom"`
}

// HeightRadius is an (height, radius) pair used by several assemblies.
type HeightRadius struct {
	HeightInMM float64 `yaml:"height_in_mm"`
	RadiusInMM float64 `yaml:"radius_in_mm"`
}

// WrapDims describes the mylar-like detector wrap.
type WrapDims struct {
	Outer HeightRadius `yaml:"outer"`
	Inner HeightRadius `yaml:"inner"`
}

// HolderDims describes the detector holder.
type HolderDims struct {
	Cylinder  InnerOuter `yaml:"cylinder"`
	BottomCyl InnerOuter `yaml:"bottom_cyl"`
	Rings     RingDims   `yaml:"rings"`
	Edge      EdgeDims   `yaml:"edge"`
}

// InnerOuter pairs the inner and outer envelope of a cylindrical part.
type InnerOuter struct {
	Inner HeightRadius `yaml:"inner"`
	Outer HeightRadius `yaml:"outer"`
}

// RingDims describes the holder support rings.
type RingDims struct {
	PositionTopRingInMM    float64 `yaml:"position_top_ring_in_mm"`
	PositionBottomRingInMM float64 `yaml:"position_bottom_ring_in_mm"`
	RadiusInMM             float64 `yaml:"radius_in_mm"`
	HeightInMM             float64 `yaml:"height_in_mm"`
}

// EdgeDims describes the holder edge.
type EdgeDims struct {
	HeightInMM float64 `yaml:"height_in_mm"`
}

// BoxDims is a rectangular block given by full edge lengths.
type BoxDims struct {
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height"`
}

// PlateDims describes the bottom plate with its cable cavity.
type PlateDims struct {
	BoxDims `yaml:",inline"`
	Cavity  BoxDims `yaml:"cavity"`
}

// CastleTables holds the shielding dimensions for both measurement tables.
type CastleTables struct {
	Table1 CastleDims `yaml:"table1"`
	Table2 CastleDims `yaml:"table2"`
}

// CastleDims describes one lead-castle configuration. Cavity and Front are
// only used by table 1, CopperPlate only by table 2.
type CastleDims struct {
	Base        BoxDims `yaml:"base"`
	InnerCavity BoxDims `yaml:"inner_cavity"`
	Cavity      BoxDims `yaml:"cavity"`
	Top         BoxDims `yaml:"top"`
	Front       BoxDims `yaml:"front"`
	CopperPlate BoxDims `yaml:"copper_plate"`
}

// SourceDims describes one calibration source geometry. Which sub-blocks
// are present depends on the source type.
type SourceDims struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`

	Foil struct {
		Height float64 `yaml:"height"`
		Width  float64 `yaml:"width"`
	} `yaml:"foil"`

	AlRing struct {
		Height   float64 `yaml:"height"`
		WidthMax float64 `yaml:"width_max"`
		WidthMin float64 `yaml:"width_min"`
	} `yaml:"al_ring"`

	Capsule BoxDims `yaml:"capsule"`

	Collimator struct {
		BoxDims    `yaml:",inline"`
		BeamWidth  float64 `yaml:"beam_width"`
		BeamHeight float64 `yaml:"beam_height"`
		Window     float64 `yaml:"window"`
	} `yaml:"collimator"`

	Epoxy struct {
		Height float64 `yaml:"height"`
		Width  float64 `yaml:"width"`
	} `yaml:"epoxy"`

	Plates struct {
		Height      float64 `yaml:"height"`
		Width       float64 `yaml:"width"`
		CavityWidth float64 `yaml:"cavity_width"`
	} `yaml:"plates"`

	OffsetHeight float64 `yaml:"offset_height"`
}

// SourceHolderDims describes the source holder family.
type SourceHolderDims struct {
	Source struct {
		TopPlateHeight   float64 `yaml:"top_plate_height"`
		TopPlateWidth    float64 `yaml:"top_plate_width"`
		TopPlateDepth    float64 `yaml:"top_plate_depth"`
		TopHeight        float64 `yaml:"top_height"`
		TopInnerWidth    float64 `yaml:"top_inner_width"`
		TopInnerDepth    float64 `yaml:"top_inner_depth"`
		TopBottomHeight  float64 `yaml:"top_bottom_height"`
		BottomInnerWidth float64 `yaml:"bottom_inner_width"`
		Height           float64 `yaml:"height"`
		CavityHeight     float64 `yaml:"cavity_height"`
	} `yaml:"source"`
	OuterWidth  float64 `yaml:"outer_width"`
	InnerWidth  float64 `yaml:"inner_width"`
	HolderWidth float64 `yaml:"holder_width"`
	Copper      struct {
		Height       float64 `yaml:"height"`
		Width        float64 `yaml:"width"`
		CavityWidth  float64 `yaml:"cavity_width"`
		BottomHeight float64 `yaml:"bottom_height"`
		BottomWidth  float64 `yaml:"bottom_width"`
	} `yaml:"copper"`
}
