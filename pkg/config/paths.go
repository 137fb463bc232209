package config

import "path/filepath"

const (
	// ScenariosDirName is the subdirectory that holds scenario definitions.
	ScenariosDirName = "rolespec"

	// EphemeralDirName is the per-scenario working directory for generated
	// state and run artifacts.
	EphemeralDirName = ".rolespec"

	// FileName is the per-scenario configuration source document.
	FileName = "rolespec.yml"
)

// ScenariosDirectory returns the scenario definitions directory under path.
func ScenariosDirectory(path string) string {
	return filepath.Join(path, ScenariosDirName)
}

// EphemeralDirectory returns the ephemeral working directory under path.
func EphemeralDirectory(path string) string {
	return filepath.Join(path, EphemeralDirName)
}

// FilePath returns the configuration source document path under path.
func FilePath(path string) string {
	return filepath.Join(path, FileName)
}

// InstanceWithScenarioName disambiguates a platform instance name across
// scenarios sharing a base name.
func InstanceWithScenarioName(instanceName, scenarioName string) string {
	return instanceName + "-" + scenarioName
}
