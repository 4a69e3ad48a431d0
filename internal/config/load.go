package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/hadesgeo/internal/ctxlog"
)

// Load reads and validates a setup configuration file.
func Load(ctx context.Context, path string) (*Setup, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(ctx, path, src)
}

// Parse decodes a setup configuration from source.
func Parse(ctx context.Context, filename string, src []byte) (*Setup, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}

	var setup Setup
	if diags := gohcl.DecodeBody(file.Body, nil, &setup); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}
	if err := setup.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	ctxlog.FromContext(ctx).Debug("Setup configuration loaded.",
		"file", filename, "detector", setup.Detector, "measurement", setup.Measurement)
	return &setup, nil
}
