package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config is the resolved configuration for one scenario. It wraps the
// scenario's source file path, the ambient CLI argument maps, and the
// merged configuration document.
//
// A Config is created once per scenario per command invocation and is not
// mutated afterwards. The merged document is an immutable snapshot owned by
// the Config; accessors that expose parts of it hand out copies where
// callers are expected to modify the result.
type Config struct {
	// ScenarioFile is the path to the scenario's configuration source
	// document (its rolespec.yml).
	ScenarioFile string

	// Args holds the top-level CLI options. They are opaque to this
	// package and passed through for the capability providers.
	Args map[string]any

	// CommandArgs holds the subcommand CLI options, equally opaque.
	CommandArgs map[string]any

	doc Document
}

// New merges the partial documents over the defaults and returns a Config
// for the scenario rooted at scenarioFile's directory.
//
// Partials are ordered by ascending precedence: the last entry wins every
// conflict. Construction is strictly sequential: the merge completes fully,
// then the scenario's ephemeral directory is guaranteed to exist, then the
// Config is returned. Only the directory step can fail.
func New(scenarioFile string, args, commandArgs map[string]any, partials []Document) (*Config, error) {
	c := &Config{
		ScenarioFile: scenarioFile,
		Args:         args,
		CommandArgs:  commandArgs,
		doc:          Combine(partials),
	}

	if err := ensureDirectory(c.EphemeralDirectory()); err != nil {
		return nil, fmt.Errorf("preparing ephemeral directory: %w", err)
	}

	return c, nil
}

// Doc returns the merged configuration document. Callers must treat it as
// read-only; mutating it in place would desynchronize every accessor
// derived from it.
func (c *Config) Doc() Document {
	return c.doc
}

// ScenarioDirectory returns the directory containing the scenario's
// configuration source document.
func (c *Config) ScenarioDirectory() string {
	return filepath.Dir(c.ScenarioFile)
}

// EphemeralDirectory returns the scenario's ephemeral working directory.
func (c *Config) EphemeralDirectory() string {
	return EphemeralDirectory(c.ScenarioDirectory())
}

// Section returns the named top-level concern group from the merged
// document, or nil when the key is absent or not a mapping. The returned
// map is the document's own value and must not be mutated.
func (c *Config) Section(name string) map[string]any {
	if section, ok := c.doc[name].(map[string]any); ok {
		return section
	}
	return nil
}

// SectionOptions returns a copy of the options mapping of the named concern
// group, or an empty map when none is set.
func (c *Config) SectionOptions(name string) map[string]any {
	if section := c.Section(name); section != nil {
		if options, ok := section["options"].(map[string]any); ok {
			return copyMap(options)
		}
	}
	return map[string]any{}
}

// ProviderName returns the declared provider name of the named concern
// group, or the empty string when none is set.
func (c *Config) ProviderName(section string) string {
	if group := c.Section(section); group != nil {
		if name, ok := group["name"].(string); ok {
			return name
		}
	}
	return ""
}

// ScenarioName returns the scenario's name from the merged document.
func (c *Config) ScenarioName() string {
	return c.ProviderName("scenario")
}

// Platforms returns a deep copy of the platform entries from the merged
// document. Callers may modify the result freely.
func (c *Config) Platforms() []map[string]any {
	var platforms []map[string]any
	switch raw := c.doc["platforms"].(type) {
	case []any:
		for _, entry := range raw {
			if platform, ok := entry.(map[string]any); ok {
				platforms = append(platforms, copyMap(platform))
			}
		}
	case []map[string]any:
		for _, platform := range raw {
			platforms = append(platforms, copyMap(platform))
		}
	}
	return platforms
}

// PlatformsWithScenarioName returns the platform entries with each declared
// instance name replaced by its scenario-suffixed form, for consumption by
// the infrastructure driver. The result is a copy; the merged document is
// left untouched.
func (c *Config) PlatformsWithScenarioName() []map[string]any {
	platforms := c.Platforms()
	scenarioName := c.ScenarioName()
	for _, platform := range platforms {
		if instanceName, ok := platform["name"].(string); ok {
			platform["name"] = InstanceWithScenarioName(instanceName, scenarioName)
		}
	}
	return platforms
}

// ensureDirectory creates path unless it already exists. The parent is
// assumed to exist; a concurrent creation by another process counts as
// success.
func ensureDirectory(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return nil
}
