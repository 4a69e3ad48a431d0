package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hadesgeo/internal/metadata"
)

const fullSetup = `
detector    = "B99000A"
campaign    = "ast-2021"
measurement = "am_HS6_top_dlt"
assemblies  = ["cryostat", "cavity", "detector"]

source_position {
  phi_in_deg = 45.0
  r_in_mm    = 10.0
  z_in_mm    = 25.0
}

daq {
  card_interface = "efb2"
}
`

func TestParse(t *testing.T) {
	setup, err := Parse(context.Background(), "setup.hcl", []byte(fullSetup))
	require.NoError(t, err)

	assert.Equal(t, "B99000A", setup.Detector)
	assert.Equal(t, "ast-2021", setup.Campaign)
	assert.Equal(t, "am_HS6_top_dlt", setup.Measurement)

	require.NotNil(t, setup.SourcePosition)
	assert.Equal(t, 45.0, setup.SourcePosition.PhiInDeg)
	assert.Equal(t, 25.0, setup.SourcePosition.ZInMM)

	sel := setup.Selection()
	assert.True(t, sel["cryostat"])
	assert.False(t, sel["wrap"])

	table, err := setup.Table()
	require.NoError(t, err)
	assert.Equal(t, 2, table)
}

func TestParse_Minimal(t *testing.T) {
	setup, err := Parse(context.Background(), "setup.hcl", []byte(`
detector    = "V99000A"
measurement = "th_HS2_lat_psa"
`))
	require.NoError(t, err)

	// Without an explicit selection everything is built.
	sel := setup.Selection()
	for _, name := range AllAssemblies {
		assert.True(t, sel[name], "assembly %s", name)
	}

	// Without DAQ information table 1 is assumed.
	table, err := setup.Table()
	require.NoError(t, err)
	assert.Equal(t, 1, table)
}

func TestParse_EmptySelection(t *testing.T) {
	setup, err := Parse(context.Background(), "setup.hcl", []byte(`
detector    = "B99000A"
measurement = "am_HS6_top_dlt"
assemblies  = []
`))
	require.NoError(t, err)
	assert.Empty(t, setup.Selection())
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"empty detector", `
detector    = ""
measurement = "am_HS6_top_dlt"
`},
		{"empty measurement", `
detector    = "B99000A"
measurement = ""
`},
		{"unknown assembly", `
detector    = "B99000A"
measurement = "am_HS6_top_dlt"
assemblies  = ["cryostat", "moderator"]
`},
		{"unknown card interface", `
detector    = "B99000A"
measurement = "am_HS6_top_dlt"

daq {
  card_interface = "efb9"
}
`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(context.Background(), "setup.hcl", []byte(tc.src))
			require.ErrorIs(t, err, metadata.ErrConfiguration)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), "setup.hcl", []byte(`detector = `))
	require.Error(t, err)
}

func TestParse_MissingRequiredAttribute(t *testing.T) {
	_, err := Parse(context.Background(), "setup.hcl", []byte(`detector = "B99000A"`))
	require.ErrorContains(t, err, "decoding")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fullSetup), 0o644))

	setup, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "B99000A", setup.Detector)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.ErrorContains(t, err, "reading config")
}
