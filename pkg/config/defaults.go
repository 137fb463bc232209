package config

// Defaults returns the canonical baseline configuration document.
//
// Every concern section carries at least the keys later code depends on: a
// provider name, an options map, the scenario step sequences and the
// verifier directory. The document is rebuilt on every call so no two
// Config instances can contaminate each other through shared state; it
// never touches the filesystem or the environment.
func Defaults() Document {
	return Document{
		"dependency": map[string]any{
			"name":    "galaxy",
			"options": map[string]any{},
			"enabled": true,
		},
		"driver": map[string]any{
			"name":    "docker",
			"options": map[string]any{},
		},
		"lint": map[string]any{
			"name":    "ansible-lint",
			"enabled": true,
			"options": map[string]any{},
		},
		"platforms": []any{},
		"provisioner": map[string]any{
			"name":           "ansible",
			"config_options": map[string]any{},
			"options":        map[string]any{},
			"host_vars":      map[string]any{},
			"group_vars":     map[string]any{},
		},
		"scenario": map[string]any{
			"name":              "default",
			"setup":             "create.yml",
			"converge":          "playbook.yml",
			"teardown":          "destroy.yml",
			"check_sequence":    []string{"create", "converge", "check"},
			"converge_sequence": []string{"create", "converge"},
			"test_sequence": []string{
				"destroy", "dependency", "syntax", "create", "converge",
				"idempotence", "lint", "verify", "destroy",
			},
		},
		"verifier": map[string]any{
			"name":      "testinfra",
			"enabled":   true,
			"directory": "tests",
			"options":   map[string]any{},
		},
	}
}
