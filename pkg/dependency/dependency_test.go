package dependency

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rolespec/rolespec/pkg/config"
)

func newTestConfig(t *testing.T, partials []config.Document) *config.Config {
	t.Helper()

	c, err := config.New(filepath.Join(t.TempDir(), config.FileName), nil, nil, partials)
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	return c
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		want     string
	}{
		{"galaxy", NameGalaxy, NameGalaxy},
		{"gilt", NameGilt, NameGilt},
		{"unknown resolves to nothing", "pip", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConfig(t, []config.Document{
				{"dependency": map[string]any{"name": tt.declared}},
			})

			m := From(c)
			if tt.want == "" {
				if m != nil {
					t.Errorf("expected no manager, got %v", m)
				}
				return
			}
			if m == nil {
				t.Fatal("expected a manager, got nil")
			}
			if m.Name() != tt.want {
				t.Errorf("manager name = %q, want %q", m.Name(), tt.want)
			}
		})
	}
}

func TestGalaxyDefaultOptions(t *testing.T) {
	c := newTestConfig(t, nil)
	options := NewGalaxy(c).Options()

	if options["force"] != true {
		t.Errorf("expected force by default, got %v", options["force"])
	}
	if options["role-file"] != filepath.Join(c.ScenarioDirectory(), "requirements.yml") {
		t.Errorf("unexpected role-file %v", options["role-file"])
	}
	if options["roles-path"] != filepath.Join(c.EphemeralDirectory(), "roles") {
		t.Errorf("unexpected roles-path %v", options["roles-path"])
	}
}

func TestGalaxyConfiguredOptionsWin(t *testing.T) {
	c := newTestConfig(t, []config.Document{
		{"dependency": map[string]any{
			"options": map[string]any{"role-file": "deps.yml"},
		}},
	})

	options := NewGalaxy(c).Options()
	if options["role-file"] != "deps.yml" {
		t.Errorf("configured option should win over default, got %v", options["role-file"])
	}
	if options["force"] != true {
		t.Error("unrelated default lost during merge")
	}
}

func TestGiltDefaultOptions(t *testing.T) {
	c := newTestConfig(t, []config.Document{
		{"dependency": map[string]any{"name": NameGilt}},
	})

	options := NewGilt(c).Options()
	if options["config"] != filepath.Join(c.ScenarioDirectory(), "gilt.yml") {
		t.Errorf("unexpected gilt config path %v", options["config"])
	}
}

func TestEnabledDefaultsTrue(t *testing.T) {
	c := newTestConfig(t, nil)

	if !NewGalaxy(c).Enabled() {
		t.Error("dependency should be enabled by default")
	}
}

func TestDisabledExecuteIsNoop(t *testing.T) {
	c := newTestConfig(t, []config.Document{
		{"dependency": map[string]any{"enabled": false}},
	})

	if err := NewGalaxy(c).Execute(context.Background()); err != nil {
		t.Errorf("disabled manager should be a no-op, got %v", err)
	}
	if err := NewGilt(c).Execute(context.Background()); err != nil {
		t.Errorf("disabled manager should be a no-op, got %v", err)
	}
}
