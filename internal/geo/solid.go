package geo

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is a named shape. Concrete kinds are Box, Tubs, GenericPolycone and
// the boolean solids Union and Subtraction.
type Solid interface {
	// SolidName returns the registry name of the solid.
	SolidName() string
}

// Transform positions one solid (or volume) relative to another. Rotation is
// a set of extrinsic Euler angles around x, y and z; Translation is in mm.
type Transform struct {
	Rotation    [3]float64
	Translation r3.Vec
}

// Identity is the zero transform.
var Identity = Transform{}

// Translate returns a pure translation transform.
func Translate(x, y, z float64) Transform {
	return Transform{Translation: r3.Vec{X: x, Y: y, Z: z}}
}

// Box is a rectangular cuboid centered on the origin. X, Y and Z are the
// full edge lengths.
type Box struct {
	Name    string
	X, Y, Z float64
}

// SolidName implements Solid.
func (b *Box) SolidName() string { return b.Name }

// Tubs is a tube segment centered on the origin. RMin and RMax are the inner
// and outer radii, Dz the full height, SPhi/DPhi the angular start and span.
type Tubs struct {
	Name       string
	RMin, RMax float64
	Dz         float64
	SPhi, DPhi float64
}

// SolidName implements Solid.
func (t *Tubs) SolidName() string { return t.Name }

// GenericPolycone is a rotationally symmetric solid described by an open
// (r, z) profile polygon swept from SPhi over DPhi. R and Z must have equal
// length; the profile is implicitly closed from the last point back to the
// first.
type GenericPolycone struct {
	Name       string
	SPhi, DPhi float64
	R, Z       []float64
}

// SolidName implements Solid.
func (p *GenericPolycone) SolidName() string { return p.Name }

// Union is the boolean union of First with Second, where Second is moved by
// the transform before combining.
type Union struct {
	Name          string
	First, Second Solid
	Trans         Transform
}

// SolidName implements Solid.
func (u *Union) SolidName() string { return u.Name }

// Subtraction removes the transformed Second solid from First.
type Subtraction struct {
	Name          string
	First, Second Solid
	Trans         Transform
}

// SolidName implements Solid.
func (s *Subtraction) SolidName() string { return s.Name }
