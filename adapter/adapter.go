package adapter

import (
	"fmt"

	"github.com/brettbedarf/fsgraph"
	"github.com/brettbedarf/fsgraph/config"
	"github.com/brettbedarf/fsgraph/internal/core"
)

var _ fsgraph.Adapter = (*Adapter)(nil)

// Adapter serves the filesystem graph rooted at the configured origin to a
// query interpreter
type Adapter struct {
	*core.Adapter
	cfg *config.Config
}

// New creates an Adapter instance given your config.
// The config is validated but the origin is not opened until the first scan.
func New(cfg *config.Config) (*Adapter, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Adapter{core.NewAdapter(cfg), cfg}, nil
}

// Config returns the configuration the adapter was built with
func (a *Adapter) Config() config.Config {
	return *a.cfg
}
