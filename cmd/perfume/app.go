package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KurtErsin/perfume/internal/catalog"
	"github.com/KurtErsin/perfume/internal/config"
	"github.com/KurtErsin/perfume/internal/shoplink"
	pkgcatalog "github.com/KurtErsin/perfume/pkg/catalog"
)

// app holds what every subcommand needs: settings and the catalog engine.
type app struct {
	settings config.Settings
	catalog  *pkgcatalog.Catalog
	engine   *catalog.Engine
}

// loadApp reads the configuration named by --config and loads the catalog,
// from --catalog when given.
func loadApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	if override, _ := cmd.Flags().GetString("catalog"); override != "" {
		settings.Catalog.Path = override
	}

	cat := pkgcatalog.NewCatalog()
	if settings.Catalog.Path != "" {
		cat = pkgcatalog.NewCatalogFromFile(settings.Catalog.Path)
	}
	if err := cat.Load(); err != nil {
		return nil, err
	}

	tag, err := settings.Catalog.Tag()
	if err != nil {
		return nil, err
	}
	engine := catalog.NewEngine(cat,
		catalog.WithLocale(tag),
		catalog.WithWeights(settings.Recommend.Weights.Engine()),
		catalog.WithRecommendLimit(settings.Recommend.Limit),
	)
	return &app{settings: settings, catalog: cat, engine: engine}, nil
}

// shop builds the shop link resolver from settings.
func (a *app) shop() (*shoplink.Static, error) {
	s := a.settings.Shop
	return shoplink.NewFromHandles(s.BaseURL, s.Handles, s.Links)
}

// newLogger builds a production logger, or a development one when
// log.development is set, at the configured level.
func newLogger(s config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(s.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if s.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
