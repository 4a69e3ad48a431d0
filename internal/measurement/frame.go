package measurement

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DetectorFrame converts a source position given in polar coordinates
// (phi in degrees, r and z in mm, z measured from the cryostat top) into a
// cartesian offset in the detector frame.
func DetectorFrame(phiInDeg, rInMM, zInMM float64) r3.Vec {
	phi := phiInDeg * math.Pi / 180.0
	return r3.Vec{
		X: rInMM * math.Cos(phi),
		Y: rInMM * math.Sin(phi),
		Z: zInMM,
	}
}
