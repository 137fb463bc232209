// Package driver manages the infrastructure a scenario's platform
// instances run on.
package driver

import "github.com/rolespec/rolespec/pkg/config"

// Driver provisions and destroys the platform instances of a scenario.
type Driver interface {
	// Name returns the driver name as declared in the configuration.
	Name() string

	// Options returns the configured options merged over the driver's
	// defaults.
	Options() map[string]any

	// ConnectionOptions returns the inventory options the provisioner and
	// verifier need to reach this driver's instances.
	ConnectionOptions() map[string]any

	// Instances returns the scenario-suffixed platform entries this driver
	// is responsible for.
	Instances() []map[string]any
}

// NameDocker is the container-based driver.
const NameDocker = "docker"

// From resolves the infrastructure driver declared in the merged document.
//
// Unknown names resolve to nil rather than an error; the caller surfaces
// the miss at point of use. A fresh handle is constructed on every call.
func From(c *config.Config) Driver {
	if c.ProviderName("driver") == NameDocker {
		return NewDocker(c)
	}
	return nil
}
