package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtentOf(t *testing.T) {
	testCases := []struct {
		name  string
		solid Solid
		want  Extent
	}{
		{
			name:  "box",
			solid: &Box{Name: "b", X: 6, Y: 8, Z: 10},
			want:  Extent{RMax: 5, ZMin: -5, ZMax: 5},
		},
		{
			name:  "tubs",
			solid: &Tubs{Name: "t", RMin: 1, RMax: 4, Dz: 20, DPhi: 2 * math.Pi},
			want:  Extent{RMax: 4, ZMin: -10, ZMax: 10},
		},
		{
			name: "polycone",
			solid: &GenericPolycone{
				Name: "p", DPhi: 2 * math.Pi,
				R: []float64{0, 5, 5, 0},
				Z: []float64{0, 0, 30, 30},
			},
			want: Extent{RMax: 5, ZMin: 0, ZMax: 30},
		},
		{
			name: "union grows by the translated second operand",
			solid: &Union{
				Name:   "u",
				First:  &Box{Name: "a", X: 2, Y: 2, Z: 2},
				Second: &Box{Name: "b", X: 2, Y: 2, Z: 2},
				Trans:  Translate(0, 0, 5),
			},
			want: Extent{RMax: math.Sqrt2, ZMin: -1, ZMax: 6},
		},
		{
			name: "subtraction keeps the first operand's bound",
			solid: &Subtraction{
				Name:   "s",
				First:  &Box{Name: "a", X: 10, Y: 10, Z: 10},
				Second: &Box{Name: "b", X: 20, Y: 20, Z: 20},
				Trans:  Identity,
			},
			want: Extent{RMax: math.Hypot(5, 5), ZMin: -5, ZMax: 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtentOf(tc.solid)
			require.NoError(t, err)
			assert.InDelta(t, tc.want.RMax, got.RMax, 1e-9)
			assert.InDelta(t, tc.want.ZMin, got.ZMin, 1e-9)
			assert.InDelta(t, tc.want.ZMax, got.ZMax, 1e-9)
		})
	}
}

func TestProfileOf(t *testing.T) {
	p, err := ProfileOf(&GenericPolycone{
		Name: "p", DPhi: 2 * math.Pi,
		R: []float64{0, 5, 5, 0},
		Z: []float64{0, 0, 30, 30},
	})
	require.NoError(t, err)
	// The outline is closed back to the first point.
	assert.Equal(t, []float64{0, 5, 5, 0, 0}, p.R)
	assert.Equal(t, []float64{0, 0, 30, 30, 0}, p.Z)

	_, err = ProfileOf(&Box{Name: "b", X: 1, Y: 1, Z: 1})
	require.ErrorContains(t, err, "no rotational profile")
}

func TestEquivalentExtents(t *testing.T) {
	// The same body described with different z origins: a centered tube and
	// a polycone starting at z=0.
	tube := &Tubs{Name: "t", RMax: 5, Dz: 30, DPhi: 2 * math.Pi}
	poly := &GenericPolycone{
		Name: "p", DPhi: 2 * math.Pi,
		R: []float64{0, 5, 5, 0},
		Z: []float64{0, 0, 30, 30},
	}
	require.NoError(t, EquivalentExtents(tube, poly, 1e-6))

	narrower := &Tubs{Name: "n", RMax: 4, Dz: 30, DPhi: 2 * math.Pi}
	require.ErrorContains(t, EquivalentExtents(tube, narrower, 1e-6), "bounding radius")

	shorter := &Tubs{Name: "s", RMax: 5, Dz: 29, DPhi: 2 * math.Pi}
	require.ErrorContains(t, EquivalentExtents(tube, shorter, 1e-6), "z span")
}
