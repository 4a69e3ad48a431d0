package geo

import (
	"fmt"
	"math"
)

// Profile is the closed (r, z) outline of a rotationally symmetric solid.
// The last point repeats the first.
type Profile struct {
	R []float64
	Z []float64
}

// ProfileOf extracts the closed outline of a solid with rotational symmetry.
// Supported kinds are GenericPolycone and Tubs; anything else is an error.
func ProfileOf(s Solid) (Profile, error) {
	switch v := s.(type) {
	case *GenericPolycone:
		n := len(v.R)
		if n == 0 || n != len(v.Z) {
			return Profile{}, fmt.Errorf("polycone %q has an invalid profile", v.Name)
		}
		p := Profile{R: make([]float64, 0, n+1), Z: make([]float64, 0, n+1)}
		p.R = append(p.R, v.R...)
		p.Z = append(p.Z, v.Z...)
		p.R = append(p.R, v.R[0])
		p.Z = append(p.Z, v.Z[0])
		return p, nil
	case *Tubs:
		// Rectangle in (r, z), traced outer-edge first.
		zlo, zhi := -v.Dz/2, v.Dz/2
		return Profile{
			R: []float64{v.RMin, v.RMax, v.RMax, v.RMin, v.RMin},
			Z: []float64{zlo, zlo, zhi, zhi, zlo},
		}, nil
	default:
		return Profile{}, fmt.Errorf("solid %q (%T) has no rotational profile", s.SolidName(), s)
	}
}

// Extent is an axis-aligned bound of a solid: the maximal distance from the
// z axis and the z range covered.
type Extent struct {
	RMax       float64
	ZMin, ZMax float64
}

// ExtentOf computes the bound of a solid. For boolean solids the bound is
// the combination of both operands, with the second operand shifted by the
// boolean transform's translation; rotations are not folded in, which is
// exact for the axis-aligned constructions used here.
func ExtentOf(s Solid) (Extent, error) {
	switch v := s.(type) {
	case *Box:
		return Extent{
			RMax: math.Hypot(v.X/2, v.Y/2),
			ZMin: -v.Z / 2,
			ZMax: v.Z / 2,
		}, nil
	case *Tubs:
		return Extent{RMax: v.RMax, ZMin: -v.Dz / 2, ZMax: v.Dz / 2}, nil
	case *GenericPolycone:
		if len(v.R) == 0 || len(v.R) != len(v.Z) {
			return Extent{}, fmt.Errorf("polycone %q has an invalid profile", v.Name)
		}
		e := Extent{ZMin: math.Inf(1), ZMax: math.Inf(-1)}
		for i := range v.R {
			e.RMax = math.Max(e.RMax, v.R[i])
			e.ZMin = math.Min(e.ZMin, v.Z[i])
			e.ZMax = math.Max(e.ZMax, v.Z[i])
		}
		return e, nil
	case *Union:
		return booleanExtent(v.First, v.Second, v.Trans, true)
	case *Subtraction:
		return booleanExtent(v.First, v.Second, v.Trans, false)
	default:
		return Extent{}, fmt.Errorf("cannot compute extent of solid %q (%T)", s.SolidName(), s)
	}
}

func booleanExtent(first, second Solid, tr Transform, grow bool) (Extent, error) {
	e1, err := ExtentOf(first)
	if err != nil {
		return Extent{}, err
	}
	if !grow {
		// A subtraction can only shrink the first operand.
		return e1, nil
	}
	e2, err := ExtentOf(second)
	if err != nil {
		return Extent{}, err
	}
	off := tr.Translation
	e2.RMax += math.Hypot(off.X, off.Y)
	e2.ZMin += off.Z
	e2.ZMax += off.Z
	return Extent{
		RMax: math.Max(e1.RMax, e2.RMax),
		ZMin: math.Min(e1.ZMin, e2.ZMin),
		ZMax: math.Max(e1.ZMax, e2.ZMax),
	}, nil
}

// EquivalentExtents checks that two solids cover the same bounding radius
// and z range within tol. The z ranges are compared by span and the radii
// directly, so solids defined with different z origins still compare equal
// when they describe the same body.
func EquivalentExtents(a, b Solid, tol float64) error {
	ea, err := ExtentOf(a)
	if err != nil {
		return err
	}
	eb, err := ExtentOf(b)
	if err != nil {
		return err
	}
	if math.Abs(ea.RMax-eb.RMax) > tol {
		return fmt.Errorf("solids %q and %q differ in bounding radius: %v vs %v",
			a.SolidName(), b.SolidName(), ea.RMax, eb.RMax)
	}
	spanA := ea.ZMax - ea.ZMin
	spanB := eb.ZMax - eb.ZMin
	if math.Abs(spanA-spanB) > tol {
		return fmt.Errorf("solids %q and %q differ in z span: %v vs %v",
			a.SolidName(), b.SolidName(), spanA, spanB)
	}
	return nil
}
