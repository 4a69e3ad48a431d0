package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_DefaultsMissingEnrichment(t *testing.T) {
	diode := &DiodeRecord{Name: "V99000A"}

	merged, err := Merge(diode, nil)
	require.NoError(t, err)
	require.NotNil(t, merged.Production.Enrichment.Val)
	assert.Equal(t, 0.9, *merged.Production.Enrichment.Val)

	// The input record is untouched.
	assert.Nil(t, diode.Production.Enrichment.Val)
}

func TestMerge_KeepsMeasuredEnrichment(t *testing.T) {
	val := 0.876
	diode := &DiodeRecord{Name: "B99000A"}
	diode.Production.Enrichment.Val = &val

	merged, err := Merge(diode, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.876, *merged.Production.Enrichment.Val)
}

func TestMerge_Idempotent(t *testing.T) {
	diode := &DiodeRecord{Name: "V99000A"}
	extra := map[string]any{"measurement": "am_HS6_top_dlt"}

	once, err := Merge(diode, extra)
	require.NoError(t, err)
	twice, err := Merge(once, extra)
	require.NoError(t, err)

	// The default is applied exactly once; merging again neither stacks the
	// extra configuration nor overrides the already-defaulted value.
	assert.Equal(t, 0.9, *twice.Production.Enrichment.Val)
	assert.Equal(t, *once.Production.Enrichment.Val, *twice.Production.Enrichment.Val)
	assert.Equal(t, once.Hades, twice.Hades)
}

func TestMerge_DeepCopies(t *testing.T) {
	val := 0.876
	diode := &DiodeRecord{Name: "B99000A"}
	diode.Production.Enrichment.Val = &val

	merged, err := Merge(diode, nil)
	require.NoError(t, err)

	*merged.Production.Enrichment.Val = 0.5
	assert.Equal(t, 0.876, *diode.Production.Enrichment.Val)
}

func TestMerge_NilRecord(t *testing.T) {
	_, err := Merge(nil, nil)
	require.ErrorIs(t, err, ErrConfiguration)
}
