package metadata

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hadesgeo/internal/ctxlog"
)

func TestResolve_NoStoreWithoutOptIn(t *testing.T) {
	_, err := Resolve(context.Background(), nil, "B01234A", nil, false)
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestResolve_PlaceholderFallbackWarns(t *testing.T) {
	logBuffer := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	res, err := Resolve(ctx, nil, "B01234A", nil, true)
	require.NoError(t, err)

	assert.Equal(t, OriginPlaceholder, res.Origin)
	assert.Equal(t, "B01234A", res.Diode.Name)
	assert.Equal(t, "B01234A", res.Setup.Name)
	assert.True(t, strings.Contains(logBuffer.String(), "PUBLIC PLACEHOLDER DATA"),
		"fallback must log a loud warning, got: %s", logBuffer.String())
}

func TestResolve_AuthoritativeStore(t *testing.T) {
	res, err := Resolve(context.Background(), NewPublicStore(), "B01234A", nil, false)
	require.NoError(t, err)
	assert.Equal(t, OriginAuthoritative, res.Origin)
}

func TestResolve_MergesExtraConfig(t *testing.T) {
	extra := map[string]any{"measurement": "am_HS6_top_dlt"}
	res, err := Resolve(context.Background(), nil, "V01234A", extra, true)
	require.NoError(t, err)

	// The V placeholder has no measured enrichment, so the default applies.
	require.NotNil(t, res.Diode.Production.Enrichment.Val)
	assert.Equal(t, 0.9, *res.Diode.Production.Enrichment.Val)
	assert.Equal(t, extra, res.Diode.Hades)
}
