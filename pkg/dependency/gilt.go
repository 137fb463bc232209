package dependency

import (
	"context"
	"path/filepath"

	"github.com/rolespec/rolespec/pkg/config"
	"github.com/rolespec/rolespec/pkg/telemetry"
	"github.com/rolespec/rolespec/pkg/util"
)

// Gilt overlays repository dependencies with gilt from the scenario's
// gilt.yml.
type Gilt struct {
	c *config.Config
}

// NewGilt creates a gilt dependency manager bound to c.
func NewGilt(c *config.Config) *Gilt {
	return &Gilt{c: c}
}

// Name returns the dependency manager name.
func (g *Gilt) Name() string {
	return NameGilt
}

// Enabled reports whether the dependency step runs.
func (g *Gilt) Enabled() bool {
	return enabled(g.c)
}

func (g *Gilt) defaultOptions() map[string]any {
	return map[string]any{
		"config": filepath.Join(g.c.ScenarioDirectory(), "gilt.yml"),
	}
}

// Options returns the configured options merged over the defaults.
// Configured keys win.
func (g *Gilt) Options() map[string]any {
	return config.MergeMaps(g.defaultOptions(), g.c.SectionOptions("dependency"))
}

// Execute runs gilt overlay with the resolved options.
func (g *Gilt) Execute(ctx context.Context) error {
	log := telemetry.FromContext(ctx).WithComponent("dependency")
	if !g.Enabled() {
		log.Warn("skipping, dependency is disabled")
		return nil
	}

	args := append(util.BuildOptionArgs(g.Options()), "overlay")
	return util.RunCommand(ctx, "gilt", args, g.c.ScenarioDirectory())
}
