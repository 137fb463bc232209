// Package provisioner converges a scenario's instances to the state the
// role under test describes.
package provisioner

import (
	"context"

	"github.com/rolespec/rolespec/pkg/config"
)

// Provisioner applies the role under test to the scenario's instances.
type Provisioner interface {
	// Name returns the provisioner name as declared in the configuration.
	Name() string

	// Options returns the configured options merged over the provisioner's
	// defaults.
	Options() map[string]any

	// ConfigOptions returns the provisioner's tool configuration options.
	ConfigOptions() map[string]any

	// HostVars returns per-host variables from the configuration.
	HostVars() map[string]any

	// GroupVars returns per-group variables from the configuration.
	GroupVars() map[string]any

	// Syntax checks the converge playbook without running it.
	Syntax(ctx context.Context) error

	// Converge runs the converge playbook against the instances.
	Converge(ctx context.Context) error
}

// NameAnsible is the ansible-playbook based provisioner.
const NameAnsible = "ansible"

// From resolves the provisioner declared in the merged document.
//
// Unknown names resolve to nil rather than an error; the caller surfaces
// the miss at point of use. A fresh handle is constructed on every call.
func From(c *config.Config) Provisioner {
	if c.ProviderName("provisioner") == NameAnsible {
		return NewAnsible(c)
	}
	return nil
}
