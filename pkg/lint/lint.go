// Package lint checks a scenario's playbooks for style and correctness
// problems before they run.
package lint

import (
	"context"

	"github.com/rolespec/rolespec/pkg/config"
)

// Linter lints the scenario's converge playbook.
type Linter interface {
	// Name returns the linter name as declared in the configuration.
	Name() string

	// Enabled reports whether the lint step runs for this scenario.
	Enabled() bool

	// Options returns the configured options merged over the linter's
	// defaults.
	Options() map[string]any

	// Execute lints the converge playbook. A disabled linter is a no-op.
	Execute(ctx context.Context) error
}

// NameAnsibleLint is the ansible-lint based linter.
const NameAnsibleLint = "ansible-lint"

// From resolves the linter declared in the merged document.
//
// Unknown names resolve to nil rather than an error; the caller surfaces
// the miss at point of use. A fresh handle is constructed on every call.
func From(c *config.Config) Linter {
	if c.ProviderName("lint") == NameAnsibleLint {
		return NewAnsibleLint(c)
	}
	return nil
}
