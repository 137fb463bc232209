// Package state persists a scenario's run state across command
// invocations. The state lives as a small YAML document inside the
// scenario's ephemeral directory and records what has already happened to
// the scenario's instances.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rolespec/rolespec/pkg/config"
)

// FileName is the state document inside the ephemeral directory.
const FileName = "state.yml"

// data is the on-disk shape of the state document.
type data struct {
	Created   bool   `yaml:"created"`
	Converged bool   `yaml:"converged"`
	Driver    string `yaml:"driver,omitempty"`
}

// State is the persisted run state of one scenario. Every setter saves
// immediately, so the on-disk document always reflects the last recorded
// transition.
type State struct {
	path string
	data data
}

// New opens the scenario's state, reading the existing document when one
// is present and starting from a zero state otherwise.
func New(c *config.Config) (*State, error) {
	s := &State{path: filepath.Join(c.EphemeralDirectory(), FileName)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Created reports whether the scenario's instances have been created.
func (s *State) Created() bool {
	return s.data.Created
}

// Converged reports whether the scenario has been converged.
func (s *State) Converged() bool {
	return s.data.Converged
}

// DriverName returns the driver recorded at creation time.
func (s *State) DriverName() string {
	return s.data.Driver
}

// SetCreated records the created flag and saves.
func (s *State) SetCreated(created bool) error {
	s.data.Created = created
	return s.save()
}

// SetConverged records the converged flag and saves.
func (s *State) SetConverged(converged bool) error {
	s.data.Converged = converged
	return s.save()
}

// SetDriver records the driver name and saves.
func (s *State) SetDriver(name string) error {
	s.data.Driver = name
	return s.save()
}

// Reset discards all recorded state and saves the zero state.
func (s *State) Reset() error {
	s.data = data{}
	return s.save()
}

func (s *State) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading state %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("parsing state %s: %w", s.path, err)
	}
	return nil
}

func (s *State) save() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing state %s: %w", s.path, err)
	}
	return nil
}
