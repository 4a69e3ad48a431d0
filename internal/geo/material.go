package geo

// Element is a chemical element used as a material component.
type Element struct {
	Name   string
	Symbol string
	Z      int
	A      float64 // g/mol
}

// Component is one element of a composite material with its mass fraction.
type Component struct {
	Element  Element
	Fraction float64
}

// Material is either a composite built from elements or a reference to a
// predefined simulation-toolkit material (Predefined == true, identified by
// name only, e.g. "G4_Galactic").
type Material struct {
	Name       string
	Density    float64 // g/cm3, zero for predefined materials
	Components []Component
	Predefined bool
}

// AddElement appends an element with the given mass fraction.
func (m *Material) AddElement(e Element, fraction float64) {
	m.Components = append(m.Components, Component{Element: e, Fraction: fraction})
}

// PredefinedMaterial returns a reference to a toolkit-defined material.
func PredefinedMaterial(name string) *Material {
	return &Material{Name: name, Predefined: true}
}

// Equal reports whether two materials describe the same substance. Composite
// materials compare by name, density and component list; predefined ones by
// name. Used when merging registries so that the same material defined by
// two description files does not collide.
func (m *Material) Equal(other *Material) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Name != other.Name || m.Predefined != other.Predefined {
		return false
	}
	if m.Predefined {
		return true
	}
	if m.Density != other.Density || len(m.Components) != len(other.Components) {
		return false
	}
	for i, c := range m.Components {
		if c != other.Components[i] {
			return false
		}
	}
	return true
}
