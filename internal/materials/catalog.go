// Package materials defines the fixed catalog of materials used by the
// volume builders. Composite materials are registered into the registry of
// the volume that uses them; predefined toolkit materials are referenced by
// name only.
package materials

import (
	"github.com/vk/hadesgeo/internal/geo"
)

// Elements used by the composite materials.
var (
	hydrogen  = geo.Element{Name: "Hydrogen", Symbol: "H", Z: 1, A: 1.0}
	carbon    = geo.Element{Name: "Carbon", Symbol: "C", Z: 6, A: 12.01}
	aluminium = geo.Element{Name: "Aluminium", Symbol: "Al", Z: 13, A: 26.98}
	copper    = geo.Element{Name: "Copper", Symbol: "Cu", Z: 29, A: 63.546}
	lead      = geo.Element{Name: "Lead", Symbol: "Pb", Z: 82, A: 207.2}
	bismuth   = geo.Element{Name: "Bismuth", Symbol: "Bi", Z: 83, A: 208.98}
)

// Names of the predefined toolkit materials in use.
const (
	Vacuum    = "G4_Galactic"
	LeadG4    = "G4_Pb"
	CopperG4  = "G4_Cu"
	Germanium = "G4_Ge"
)

// HD1000 creates the polyethylene-like HD1000 wrap material and registers
// it with the given registry.
func HD1000(reg *geo.Registry) (*geo.Material, error) {
	m := &geo.Material{Name: "HD1000", Density: 0.93}
	m.AddElement(hydrogen, 4.0/(4.0+2.0*12.01))
	m.AddElement(carbon, 2.0*12.01/(4.0+2.0*12.01))
	if err := reg.AddMaterial(m); err != nil {
		return nil, err
	}
	return m, nil
}

// EnAw2011T8 creates the EN_AW-2011T8 aluminum alloy used for the cryostat
// and the detector holders.
func EnAw2011T8(reg *geo.Registry) (*geo.Material, error) {
	m := &geo.Material{Name: "EN_AW-2011T8", Density: 2.84}
	m.AddElement(aluminium, 0.932)
	m.AddElement(copper, 0.06)
	m.AddElement(lead, 0.004)
	m.AddElement(bismuth, 0.004)
	if err := reg.AddMaterial(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Aluminum creates pure aluminum.
func Aluminum(reg *geo.Registry) (*geo.Material, error) {
	m := &geo.Material{Name: "Aluminum", Density: 2.7}
	m.AddElement(aluminium, 1.0)
	if err := reg.AddMaterial(m); err != nil {
		return nil, err
	}
	return m, nil
}
