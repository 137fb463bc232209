package driver

import "github.com/rolespec/rolespec/pkg/config"

// Docker runs scenario instances as local containers.
type Docker struct {
	c *config.Config
}

// NewDocker creates a docker driver bound to c.
func NewDocker(c *config.Config) *Docker {
	return &Docker{c: c}
}

// Name returns the driver name.
func (d *Docker) Name() string {
	return NameDocker
}

func (d *Docker) defaultOptions() map[string]any {
	return map[string]any{}
}

// Options returns the configured options merged over the defaults.
func (d *Docker) Options() map[string]any {
	return config.MergeMaps(d.defaultOptions(), d.c.SectionOptions("driver"))
}

// ConnectionOptions tells the provisioner and verifier to reach instances
// through the docker connection plugin.
func (d *Docker) ConnectionOptions() map[string]any {
	return map[string]any{
		"ansible_connection": "docker",
	}
}

// Instances returns the scenario-suffixed platform entries.
func (d *Docker) Instances() []map[string]any {
	return d.c.PlatformsWithScenarioName()
}
