package config

import (
	"path/filepath"
	"testing"
)

func TestPathHelpers(t *testing.T) {
	base := filepath.Join("/", "role")

	if got := ScenariosDirectory(base); got != filepath.Join(base, "rolespec") {
		t.Errorf("ScenariosDirectory = %s", got)
	}
	if got := EphemeralDirectory(base); got != filepath.Join(base, ".rolespec") {
		t.Errorf("EphemeralDirectory = %s", got)
	}
	if got := FilePath(base); got != filepath.Join(base, "rolespec.yml") {
		t.Errorf("FilePath = %s", got)
	}
}

func TestInstanceWithScenarioName(t *testing.T) {
	tests := []struct {
		instance string
		scenario string
		want     string
	}{
		{"instance", "default", "instance-default"},
		{"web", "multi-node", "web-multi-node"},
		{"", "default", "-default"},
	}

	for _, tt := range tests {
		if got := InstanceWithScenarioName(tt.instance, tt.scenario); got != tt.want {
			t.Errorf("InstanceWithScenarioName(%q, %q) = %q, want %q",
				tt.instance, tt.scenario, got, tt.want)
		}
	}
}
