package app_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hadesgeo/internal/app"
	"github.com/vk/hadesgeo/internal/metadata"
	"github.com/vk/hadesgeo/internal/testutil"
)

const placeholderSetup = `
detector    = "B99000A"
measurement = "am_HS6_top_dlt"

source_position {
  z_in_mm = 25.0
}
`

func TestRun_PlaceholderGeometry(t *testing.T) {
	result := testutil.RunAppTest(t, map[string]string{
		"setup.hcl": placeholderSetup,
	}, func(cfg *app.Config) {
		cfg.PublicGeometry = true
	})
	require.NoError(t, result.Err)

	// The placeholder fallback must be loud in the logs.
	assert.Contains(t, result.LogOutput, "PUBLIC PLACEHOLDER DATA")
	assert.Contains(t, result.LogOutput, "Scene constructed.")
	assert.Contains(t, result.LogOutput, "Scene written.")

	scene, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(scene), `volume "Cryostat"`)
	assert.Contains(t, string(scene), `world = "world"`)
}

func TestRun_RefusesPlaceholderWithoutOptIn(t *testing.T) {
	result := testutil.RunAppTest(t, map[string]string{
		"setup.hcl": placeholderSetup,
	}, nil)
	require.ErrorIs(t, result.Err, metadata.ErrSourceUnavailable)
}

func TestRun_MissingConfigFile(t *testing.T) {
	result := testutil.RunAppTest(t, nil, nil)
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "reading config")
}

func TestRun_MissingMetadataRoot(t *testing.T) {
	result := testutil.RunAppTest(t, map[string]string{
		"setup.hcl": placeholderSetup,
	}, func(cfg *app.Config) {
		cfg.MetadataPath = "/nonexistent/hades-metadata"
	})
	require.Error(t, result.Err)
}
