package geomfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hadesgeo/internal/geo"
	"github.com/vk/hadesgeo/internal/materials"
)

func TestWrite_RequiresWorld(t *testing.T) {
	err := Write(&bytes.Buffer{}, geo.NewRegistry())
	require.ErrorContains(t, err, "without a world volume")
}

func TestWrite(t *testing.T) {
	reg := geo.NewRegistry()

	world, err := reg.NewLogicalVolume(
		&geo.Box{Name: "world", X: 1000, Y: 1000, Z: 1000},
		geo.PredefinedMaterial(materials.Vacuum),
		"world",
	)
	require.NoError(t, err)
	require.NoError(t, reg.SetWorld(world))

	base := &geo.Box{Name: "base", X: 100, Y: 100, Z: 40}
	hole := &geo.Tubs{Name: "hole", RMax: 20, Dz: 40}
	pierced := &geo.Subtraction{
		Name:   "pierced",
		First:  base,
		Second: hole,
		Trans:  geo.Identity,
	}
	castle, err := reg.NewLogicalVolume(pierced, geo.PredefinedMaterial(materials.LeadG4), "Castle")
	require.NoError(t, err)

	_, err = reg.PlaceVolume(castle, world, "Castle_PV", geo.Translate(0, 0, 20))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reg))
	out := buf.String()

	assert.Contains(t, out, `material "G4_Galactic"`)
	assert.Contains(t, out, `material "G4_Pb"`)
	assert.Contains(t, out, "predefined = true")
	assert.Contains(t, out, `solid "box" "base"`)
	assert.Contains(t, out, `solid "tubs" "hole"`)
	assert.Contains(t, out, `solid "subtraction" "pierced"`)
	assert.Contains(t, out, `volume "Castle"`)
	assert.Contains(t, out, `placement "Castle_PV"`)
	assert.Contains(t, out, `world = "world"`)

	// Boolean solids come after the primitives they reference.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"box" "base"`)),
		bytes.Index(buf.Bytes(), []byte(`"subtraction" "pierced"`)))
}

func TestWrite_NestedBooleans(t *testing.T) {
	reg := geo.NewRegistry()

	world, err := reg.NewLogicalVolume(
		&geo.Box{Name: "world", X: 1000, Y: 1000, Z: 1000},
		geo.PredefinedMaterial(materials.Vacuum),
		"world",
	)
	require.NoError(t, err)
	require.NoError(t, reg.SetWorld(world))

	base := &geo.Box{Name: "base", X: 100, Y: 100, Z: 40}
	hole := &geo.Tubs{Name: "hole", RMax: 20, Dz: 40}
	lid := &geo.Box{Name: "lid", X: 100, Y: 100, Z: 10}
	// "a_capped" sorts before its operand "pierced", so it is written with a
	// forward reference.
	pierced := &geo.Subtraction{Name: "pierced", First: base, Second: hole, Trans: geo.Identity}
	capped := &geo.Union{Name: "a_capped", First: pierced, Second: lid, Trans: geo.Translate(0, 0, -25)}
	castle, err := reg.NewLogicalVolume(capped, geo.PredefinedMaterial(materials.LeadG4), "Castle")
	require.NoError(t, err)
	_, err = reg.PlaceVolume(castle, world, "Castle_PV", geo.Identity)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reg))
	out := buf.String()

	assert.Contains(t, out, `solid "union" "a_capped"`)
	assert.Contains(t, out, `solid "subtraction" "pierced"`)
	// All primitives still precede every boolean.
	for _, primitive := range []string{`"box" "base"`, `"tubs" "hole"`, `"box" "lid"`} {
		assert.Less(t, bytes.Index(buf.Bytes(), []byte(primitive)),
			bytes.Index(buf.Bytes(), []byte(`"union" "a_capped"`)))
	}
}
