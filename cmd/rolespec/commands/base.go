package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rolespec/rolespec/pkg/config"
)

// loadConfigs discovers every scenario under the rolespec directory of the
// current working directory and resolves one configuration per scenario.
// The scenario's own file is the sole partial merged over the defaults.
func loadConfigs(args, commandArgs map[string]any) ([]*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	pattern := filepath.Join(config.ScenariosDirectory(cwd), "*", config.FileName)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("discovering scenarios: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s found under %s", config.FileName, config.ScenariosDirectory(cwd))
	}
	sort.Strings(matches)

	configs := make([]*config.Config, 0, len(matches))
	for _, file := range matches {
		doc, err := config.LoadFile(file)
		if err != nil {
			return nil, err
		}

		c, err := config.New(file, args, commandArgs, []config.Document{doc})
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", file, err)
		}
		configs = append(configs, c)
	}

	return configs, nil
}
