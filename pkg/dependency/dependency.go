// Package dependency installs a role's external dependencies before a
// scenario runs.
package dependency

import (
	"context"

	"github.com/rolespec/rolespec/pkg/config"
)

// Manager fetches role dependencies for a scenario.
type Manager interface {
	// Name returns the dependency manager name as declared in the
	// configuration.
	Name() string

	// Enabled reports whether the dependency step runs for this scenario.
	Enabled() bool

	// Options returns the configured options merged over the manager's
	// defaults.
	Options() map[string]any

	// Execute installs the dependencies. A disabled manager is a no-op.
	Execute(ctx context.Context) error
}

// Provider names accepted by the dependency section.
const (
	NameGalaxy = "galaxy"
	NameGilt   = "gilt"
)

// From resolves the dependency manager declared in the merged document.
//
// The name-to-manager mapping is a closed set; unknown names resolve to
// nil rather than an error, leaving the miss to be surfaced by the caller
// at point of use. A fresh handle is constructed on every call.
func From(c *config.Config) Manager {
	switch c.ProviderName("dependency") {
	case NameGalaxy:
		return NewGalaxy(c)
	case NameGilt:
		return NewGilt(c)
	}
	return nil
}

// enabled reads the section's enabled flag, defaulting to true when the
// key is absent or not a boolean.
func enabled(c *config.Config) bool {
	if section := c.Section("dependency"); section != nil {
		if flag, ok := section["enabled"].(bool); ok {
			return flag
		}
	}
	return true
}
