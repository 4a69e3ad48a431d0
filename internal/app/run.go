package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/hadesgeo/internal/assembly"
	"github.com/vk/hadesgeo/internal/config"
	"github.com/vk/hadesgeo/internal/ctxlog"
	"github.com/vk/hadesgeo/internal/geomfile"
	"github.com/vk/hadesgeo/internal/metadata"
)

// Run loads the setup, constructs the scene and optionally writes it out.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	setup, err := config.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return err
	}

	var store metadata.Store
	if cfg.MetadataPath != "" {
		fs, err := metadata.NewFileStore(cfg.MetadataPath)
		if err != nil {
			return err
		}
		store = fs
	}

	scene, err := assembly.Construct(ctx, setup, store, cfg.PublicGeometry)
	if err != nil {
		return fmt.Errorf("constructing geometry: %w", err)
	}

	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := geomfile.Write(f, scene.Registry); err != nil {
			return fmt.Errorf("writing scene: %w", err)
		}
		a.logger.Info("Scene written.", "path", cfg.OutputPath)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
