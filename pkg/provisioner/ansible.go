package provisioner

import (
	"context"

	"github.com/rolespec/rolespec/pkg/config"
	"github.com/rolespec/rolespec/pkg/scenario"
	"github.com/rolespec/rolespec/pkg/util"
)

// Ansible converges instances with ansible-playbook.
type Ansible struct {
	c *config.Config
}

// NewAnsible creates an ansible provisioner bound to c.
func NewAnsible(c *config.Config) *Ansible {
	return &Ansible{c: c}
}

// Name returns the provisioner name.
func (a *Ansible) Name() string {
	return NameAnsible
}

func (a *Ansible) defaultOptions() map[string]any {
	return map[string]any{
		"diff": true,
	}
}

// Options returns the configured options merged over the defaults.
func (a *Ansible) Options() map[string]any {
	return config.MergeMaps(a.defaultOptions(), a.c.SectionOptions("provisioner"))
}

// ConfigOptions returns the ansible.cfg-style options from the
// configuration.
func (a *Ansible) ConfigOptions() map[string]any {
	return a.sectionMap("config_options")
}

// HostVars returns per-host variables from the configuration.
func (a *Ansible) HostVars() map[string]any {
	return a.sectionMap("host_vars")
}

// GroupVars returns per-group variables from the configuration.
func (a *Ansible) GroupVars() map[string]any {
	return a.sectionMap("group_vars")
}

// Syntax checks the converge playbook without running it.
func (a *Ansible) Syntax(ctx context.Context) error {
	return a.playbook(ctx, "--syntax-check")
}

// Converge runs the converge playbook against the scenario's instances.
func (a *Ansible) Converge(ctx context.Context) error {
	return a.playbook(ctx)
}

func (a *Ansible) playbook(ctx context.Context, extra ...string) error {
	args := util.BuildOptionArgs(a.Options())
	args = append(args, extra...)
	args = append(args, scenario.New(a.c).ConvergeFile())
	return util.RunCommand(ctx, "ansible-playbook", args, a.c.ScenarioDirectory())
}

func (a *Ansible) sectionMap(key string) map[string]any {
	if section := a.c.Section("provisioner"); section != nil {
		if m, ok := section[key].(map[string]any); ok {
			return config.MergeMaps(map[string]any{}, m)
		}
	}
	return map[string]any{}
}
