package verifier

import (
	"context"
	"path/filepath"

	"github.com/rolespec/rolespec/pkg/config"
	"github.com/rolespec/rolespec/pkg/telemetry"
	"github.com/rolespec/rolespec/pkg/util"
)

// Testinfra verifies converged instances with testinfra via py.test.
type Testinfra struct {
	c *config.Config
}

// NewTestinfra creates a testinfra verifier bound to c.
func NewTestinfra(c *config.Config) *Testinfra {
	return &Testinfra{c: c}
}

// Name returns the verifier name.
func (t *Testinfra) Name() string {
	return NameTestinfra
}

// Enabled reports whether the verify step runs.
func (t *Testinfra) Enabled() bool {
	if section := t.c.Section("verifier"); section != nil {
		if flag, ok := section["enabled"].(bool); ok {
			return flag
		}
	}
	return true
}

// Directory returns the absolute path of the scenario's test directory.
// The configured value is relative to the scenario directory.
func (t *Testinfra) Directory() string {
	name := "tests"
	if section := t.c.Section("verifier"); section != nil {
		if dir, ok := section["directory"].(string); ok {
			name = dir
		}
	}
	return filepath.Join(t.c.ScenarioDirectory(), name)
}

// defaultOptions reach instances over the docker connection backend.
func (t *Testinfra) defaultOptions() map[string]any {
	return map[string]any{
		"connection": "docker",
	}
}

// Options returns the configured options merged over the defaults.
func (t *Testinfra) Options() map[string]any {
	return config.MergeMaps(t.defaultOptions(), t.c.SectionOptions("verifier"))
}

// Execute runs py.test against the scenario's test directory.
func (t *Testinfra) Execute(ctx context.Context) error {
	log := telemetry.FromContext(ctx).WithComponent("verifier")
	if !t.Enabled() {
		log.Warn("skipping, verifier is disabled")
		return nil
	}

	args := append(util.BuildOptionArgs(t.Options()), t.Directory())
	return util.RunCommand(ctx, "py.test", args, t.c.ScenarioDirectory())
}
