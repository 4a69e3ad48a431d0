package geo

import (
	"fmt"
)

// Registry holds all named geometry entities for a single scene: solids,
// materials, logical volumes and placements, plus the designated world
// volume. Names are unique per kind.
type Registry struct {
	solids    map[string]Solid
	materials map[string]*Material
	logicals  map[string]*LogicalVolume
	physicals map[string]*PhysicalVolume
	world     *LogicalVolume
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		solids:    make(map[string]Solid),
		materials: make(map[string]*Material),
		logicals:  make(map[string]*LogicalVolume),
		physicals: make(map[string]*PhysicalVolume),
	}
}

// AddSolid registers a solid. Registering a second solid under an existing
// name is an error. Boolean solids register their operands recursively if
// those are not yet known.
func (r *Registry) AddSolid(s Solid) error {
	name := s.SolidName()
	if name == "" {
		return fmt.Errorf("solid has no name")
	}
	if existing, ok := r.solids[name]; ok {
		if existing == s {
			return nil
		}
		return fmt.Errorf("duplicate solid name %q", name)
	}

	switch b := s.(type) {
	case *Union:
		if err := r.AddSolid(b.First); err != nil {
			return err
		}
		if err := r.AddSolid(b.Second); err != nil {
			return err
		}
	case *Subtraction:
		if err := r.AddSolid(b.First); err != nil {
			return err
		}
		if err := r.AddSolid(b.Second); err != nil {
			return err
		}
	}

	r.solids[name] = s
	return nil
}

// AddMaterial registers a material. Re-registering an equal material under
// the same name is a no-op so that independently loaded description files
// can each carry their own material table.
func (r *Registry) AddMaterial(m *Material) error {
	if m.Name == "" {
		return fmt.Errorf("material has no name")
	}
	if existing, ok := r.materials[m.Name]; ok {
		if existing.Equal(m) {
			return nil
		}
		return fmt.Errorf("conflicting definitions for material %q", m.Name)
	}
	r.materials[m.Name] = m
	return nil
}

// NewLogicalVolume registers solid and material (if needed) and creates a
// named logical volume owned by this registry.
func (r *Registry) NewLogicalVolume(s Solid, m *Material, name string) (*LogicalVolume, error) {
	if name == "" {
		return nil, fmt.Errorf("logical volume has no name")
	}
	if _, ok := r.logicals[name]; ok {
		return nil, fmt.Errorf("duplicate logical volume name %q", name)
	}
	if err := r.AddSolid(s); err != nil {
		return nil, err
	}
	if err := r.AddMaterial(m); err != nil {
		return nil, err
	}
	lv := &LogicalVolume{Name: name, Solid: s, Material: m, reg: r}
	r.logicals[name] = lv
	return lv, nil
}

// SetWorld designates the scene root. The world must belong to this registry.
func (r *Registry) SetWorld(lv *LogicalVolume) error {
	if lv.reg != r {
		return fmt.Errorf("world volume %q belongs to a different registry", lv.Name)
	}
	r.world = lv
	return nil
}

// World returns the scene root, or nil if none was set.
func (r *Registry) World() *LogicalVolume { return r.world }

// LogicalVolume looks up a logical volume by name.
func (r *Registry) LogicalVolume(name string) (*LogicalVolume, bool) {
	lv, ok := r.logicals[name]
	return lv, ok
}

// PhysicalVolume looks up a placement by name.
func (r *Registry) PhysicalVolume(name string) (*PhysicalVolume, bool) {
	pv, ok := r.physicals[name]
	return pv, ok
}

// Material looks up a material by name.
func (r *Registry) Material(name string) (*Material, bool) {
	m, ok := r.materials[name]
	return m, ok
}

// Solid looks up a solid by name.
func (r *Registry) Solid(name string) (Solid, bool) {
	s, ok := r.solids[name]
	return s, ok
}

// LogicalVolumeCount returns the number of registered logical volumes.
func (r *Registry) LogicalVolumeCount() int { return len(r.logicals) }

// PhysicalVolumeNames returns the names of all placements.
func (r *Registry) PhysicalVolumeNames() []string {
	names := make([]string, 0, len(r.physicals))
	for name := range r.physicals {
		names = append(names, name)
	}
	return names
}

// MaterialNames returns the names of all registered materials.
func (r *Registry) MaterialNames() []string {
	names := make([]string, 0, len(r.materials))
	for name := range r.materials {
		names = append(names, name)
	}
	return names
}

// SolidNames returns the names of all registered solids.
func (r *Registry) SolidNames() []string {
	names := make([]string, 0, len(r.solids))
	for name := range r.solids {
		names = append(names, name)
	}
	return names
}

// LogicalVolumeNames returns the names of all registered logical volumes.
func (r *Registry) LogicalVolumeNames() []string {
	names := make([]string, 0, len(r.logicals))
	for name := range r.logicals {
		names = append(names, name)
	}
	return names
}

// PlaceVolume places child inside mother under the given placement name.
// The mother must belong to this registry; a child built in its own
// registry (as the file-backed builders do) is adopted recursively first.
func (r *Registry) PlaceVolume(child, mother *LogicalVolume, name string, tr Transform) (*PhysicalVolume, error) {
	if mother.reg != r {
		return nil, fmt.Errorf("mother volume %q belongs to a different registry", mother.Name)
	}
	if child.reg != r {
		if err := r.adoptRecursive(child); err != nil {
			return nil, fmt.Errorf("adopting volume %q: %w", child.Name, err)
		}
	}
	if _, ok := r.physicals[name]; ok {
		return nil, fmt.Errorf("duplicate physical volume name %q", name)
	}
	pv := &PhysicalVolume{Name: name, Volume: child, Mother: mother, Trans: tr}
	r.physicals[name] = pv
	mother.daughters = append(mother.daughters, pv)
	return pv, nil
}

// adoptRecursive moves a logical volume and everything it references (solid,
// material, daughter placements) from its own registry into r.
func (r *Registry) adoptRecursive(lv *LogicalVolume) error {
	if lv.reg == r {
		return nil
	}
	if _, ok := r.logicals[lv.Name]; ok {
		return fmt.Errorf("duplicate logical volume name %q", lv.Name)
	}
	if err := r.AddSolid(lv.Solid); err != nil {
		return err
	}
	if err := r.AddMaterial(lv.Material); err != nil {
		return err
	}
	r.logicals[lv.Name] = lv
	lv.reg = r

	for _, pv := range lv.daughters {
		if err := r.adoptRecursive(pv.Volume); err != nil {
			return err
		}
		if _, ok := r.physicals[pv.Name]; ok {
			return fmt.Errorf("duplicate physical volume name %q", pv.Name)
		}
		r.physicals[pv.Name] = pv
	}
	return nil
}
