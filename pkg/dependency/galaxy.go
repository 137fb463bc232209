package dependency

import (
	"context"
	"path/filepath"

	"github.com/rolespec/rolespec/pkg/config"
	"github.com/rolespec/rolespec/pkg/telemetry"
	"github.com/rolespec/rolespec/pkg/util"
)

// Galaxy installs role dependencies with ansible-galaxy from the
// scenario's requirements file.
type Galaxy struct {
	c *config.Config
}

// NewGalaxy creates a galaxy dependency manager bound to c.
func NewGalaxy(c *config.Config) *Galaxy {
	return &Galaxy{c: c}
}

// Name returns the dependency manager name.
func (g *Galaxy) Name() string {
	return NameGalaxy
}

// Enabled reports whether the dependency step runs.
func (g *Galaxy) Enabled() bool {
	return enabled(g.c)
}

// defaultOptions installs from the scenario's requirements file into the
// ephemeral roles directory, overwriting stale copies.
func (g *Galaxy) defaultOptions() map[string]any {
	return map[string]any{
		"force":      true,
		"role-file":  filepath.Join(g.c.ScenarioDirectory(), "requirements.yml"),
		"roles-path": filepath.Join(g.c.EphemeralDirectory(), "roles"),
	}
}

// Options returns the configured options merged over the defaults.
// Configured keys win.
func (g *Galaxy) Options() map[string]any {
	return config.MergeMaps(g.defaultOptions(), g.c.SectionOptions("dependency"))
}

// Execute runs ansible-galaxy install with the resolved options.
func (g *Galaxy) Execute(ctx context.Context) error {
	log := telemetry.FromContext(ctx).WithComponent("dependency")
	if !g.Enabled() {
		log.Warn("skipping, dependency is disabled")
		return nil
	}

	args := append([]string{"install"}, util.BuildOptionArgs(g.Options())...)
	return util.RunCommand(ctx, "ansible-galaxy", args, g.c.ScenarioDirectory())
}
