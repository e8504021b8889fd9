// Package mcp exposes sented operations as MCP tools over stdio.
package mcp

import (
	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/internal/config"
	"github.com/sentlab/sented/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	distance domain.TreeDistanceService
	config   *config.Config
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Dependencies{
		distance: service.NewDistanceService(),
		config:   cfg,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// DistanceService returns the shared distance service.
func (d *Dependencies) DistanceService() domain.TreeDistanceService {
	return d.distance
}
