package lint

import (
	"context"

	"github.com/rolespec/rolespec/pkg/config"
	"github.com/rolespec/rolespec/pkg/scenario"
	"github.com/rolespec/rolespec/pkg/telemetry"
	"github.com/rolespec/rolespec/pkg/util"
)

// AnsibleLint lints the converge playbook with ansible-lint.
type AnsibleLint struct {
	c *config.Config
}

// NewAnsibleLint creates an ansible-lint linter bound to c.
func NewAnsibleLint(c *config.Config) *AnsibleLint {
	return &AnsibleLint{c: c}
}

// Name returns the linter name.
func (l *AnsibleLint) Name() string {
	return NameAnsibleLint
}

// Enabled reports whether the lint step runs.
func (l *AnsibleLint) Enabled() bool {
	if section := l.c.Section("lint"); section != nil {
		if flag, ok := section["enabled"].(bool); ok {
			return flag
		}
	}
	return true
}

// defaultOptions keeps ansible-lint out of the generated state in the
// ephemeral directory.
func (l *AnsibleLint) defaultOptions() map[string]any {
	return map[string]any{
		"exclude": l.c.EphemeralDirectory(),
	}
}

// Options returns the configured options merged over the defaults.
func (l *AnsibleLint) Options() map[string]any {
	return config.MergeMaps(l.defaultOptions(), l.c.SectionOptions("lint"))
}

// Execute runs ansible-lint against the scenario's converge playbook.
func (l *AnsibleLint) Execute(ctx context.Context) error {
	log := telemetry.FromContext(ctx).WithComponent("lint")
	if !l.Enabled() {
		log.Warn("skipping, lint is disabled")
		return nil
	}

	playbook := scenario.New(l.c).ConvergeFile()
	args := append(util.BuildOptionArgs(l.Options()), playbook)
	return util.RunCommand(ctx, "ansible-lint", args, l.c.ScenarioDirectory())
}
