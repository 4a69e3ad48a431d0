package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		raw          string
		wantSource   string
		wantPosition string
		wantID       string
	}{
		{"cs_HS2_bottom_foo", "cs_HS2", "bottom", "foo"},
		{"am_HS6_top_dlt", "am_HS6", "top", "dlt"},
		{"am_HS1_top_dlt", "am_HS1", "top", "dlt"},
		{"th_HS2_lat_psa", "th_HS2", "lat", "psa"},
		// The run id keeps its own underscores.
		{"co_HS5_top_run_0042", "co_HS5", "top", "run_0042"},
		// The single legacy rename: early barium runs recorded the old
		// holder label.
		{"ba_HS3_top_bb", "ba_HS4", "top", "bb"},
		// Only ba_HS3 is renamed.
		{"ba_HS4_top_bb", "ba_HS4", "top", "bb"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			m, err := Parse(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSource, m.Source)
			assert.Equal(t, tc.wantPosition, m.Position)
			assert.Equal(t, tc.wantID, m.ID)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"am_HS6_top",    // too few tokens
		"am__top_dlt",   // empty token
		"am_XX_top_dlt", // not a holder label
		"am_HS_top_dlt", // holder label without number
	}
	for _, raw := range testCases {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
		})
	}
}

func TestSourceType(t *testing.T) {
	testCases := []struct {
		source string
		want   string
	}{
		{"am_HS1", "am_collimated"},
		{"am_HS6", "am"},
		{"ba_HS4", "ba"},
		{"co_HS5", "co"},
		{"th_HS2", "th"},
	}
	for _, tc := range testCases {
		m := &Measurement{Source: tc.source}
		got, err := m.SourceType()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	m := &Measurement{Source: "cs_HS2"}
	_, err := m.SourceType()
	require.ErrorContains(t, err, "no defined geometry")
}

func TestLateral(t *testing.T) {
	assert.True(t, (&Measurement{Position: "lat"}).Lateral())
	assert.False(t, (&Measurement{Position: "top"}).Lateral())
}

func TestDetectorFrame(t *testing.T) {
	testCases := []struct {
		name         string
		phi, r, z    float64
		wantX, wantY float64
	}{
		{"on axis", 0, 0, 25, 0, 0},
		{"along x", 0, 10, 0, 10, 0},
		{"along y", 90, 10, 0, 0, 10},
		{"opposite x", 180, 10, 5, -10, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := DetectorFrame(tc.phi, tc.r, tc.z)
			assert.InDelta(t, tc.wantX, v.X, 1e-9)
			assert.InDelta(t, tc.wantY, v.Y, 1e-9)
			assert.Equal(t, tc.z, v.Z)
		})
	}
}
