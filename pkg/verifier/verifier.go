// Package verifier runs a scenario's test suite against converged
// instances.
package verifier

import (
	"context"

	"github.com/rolespec/rolespec/pkg/config"
)

// Verifier runs the scenario's tests.
type Verifier interface {
	// Name returns the verifier name as declared in the configuration.
	Name() string

	// Enabled reports whether the verify step runs for this scenario.
	Enabled() bool

	// Directory returns the absolute path of the scenario's test
	// directory.
	Directory() string

	// Options returns the configured options merged over the verifier's
	// defaults.
	Options() map[string]any

	// Execute runs the test suite. A disabled verifier is a no-op.
	Execute(ctx context.Context) error
}

// NameTestinfra is the testinfra (py.test) based verifier.
const NameTestinfra = "testinfra"

// From resolves the verifier declared in the merged document.
//
// Unknown names resolve to nil rather than an error; the caller surfaces
// the miss at point of use. A fresh handle is constructed on every call.
func From(c *config.Config) Verifier {
	if c.ProviderName("verifier") == NameTestinfra {
		return NewTestinfra(c)
	}
	return nil
}
