// Package scenario exposes the scenario view over a resolved
// configuration: its name, directory, playbook files, and the command
// sequences each subcommand walks through.
package scenario

import (
	"path/filepath"

	"github.com/rolespec/rolespec/pkg/config"
)

// Scenario is a read-only view over one scenario's merged configuration.
type Scenario struct {
	c *config.Config
}

// New creates a scenario view bound to c.
func New(c *config.Config) *Scenario {
	return &Scenario{c: c}
}

// Name returns the scenario's name.
func (s *Scenario) Name() string {
	return s.c.ScenarioName()
}

// Directory returns the scenario's directory, the one holding its
// configuration source document.
func (s *Scenario) Directory() string {
	return s.c.ScenarioDirectory()
}

// SetupFile returns the absolute path of the playbook that creates the
// scenario's instances.
func (s *Scenario) SetupFile() string {
	return s.file("setup")
}

// ConvergeFile returns the absolute path of the playbook the provisioner
// converges with.
func (s *Scenario) ConvergeFile() string {
	return s.file("converge")
}

// TeardownFile returns the absolute path of the playbook that destroys the
// scenario's instances.
func (s *Scenario) TeardownFile() string {
	return s.file("teardown")
}

// CheckSequence returns the steps of the check subcommand.
func (s *Scenario) CheckSequence() []string {
	return s.sequence("check_sequence")
}

// ConvergeSequence returns the steps of the converge subcommand.
func (s *Scenario) ConvergeSequence() []string {
	return s.sequence("converge_sequence")
}

// TestSequence returns the steps of the test subcommand.
func (s *Scenario) TestSequence() []string {
	return s.sequence("test_sequence")
}

func (s *Scenario) file(key string) string {
	section := s.c.Section("scenario")
	if section == nil {
		return ""
	}
	name, ok := section[key].(string)
	if !ok {
		return ""
	}
	return filepath.Join(s.Directory(), name)
}

func (s *Scenario) sequence(key string) []string {
	section := s.c.Section("scenario")
	if section == nil {
		return nil
	}

	// The defaults hold []string; YAML-decoded overrides arrive as []any.
	switch steps := section[key].(type) {
	case []string:
		out := make([]string, len(steps))
		copy(out, steps)
		return out
	case []any:
		out := make([]string, 0, len(steps))
		for _, step := range steps {
			if name, ok := step.(string); ok {
				out = append(out, name)
			}
		}
		return out
	}
	return nil
}
