package geo

// LogicalVolume binds a solid to a material under a name. It is created by
// exactly one builder call and owned by the registry it was created in;
// placing it under a mother from another registry is done through
// Registry.PlaceVolume, which merges the owning registries.
type LogicalVolume struct {
	Name     string
	Solid    Solid
	Material *Material

	reg       *Registry
	daughters []*PhysicalVolume
}

// Registry returns the registry that owns this volume.
func (lv *LogicalVolume) Registry() *Registry { return lv.reg }

// Daughters returns the physical volumes placed directly inside this volume.
func (lv *LogicalVolume) Daughters() []*PhysicalVolume { return lv.daughters }

// PhysicalVolume is a placement of a logical volume inside a mother volume.
type PhysicalVolume struct {
	Name   string
	Volume *LogicalVolume
	Mother *LogicalVolume
	Trans  Transform
}
