package config

import (
	"reflect"
	"testing"
)

func TestCombineNoPartialsYieldsDefaults(t *testing.T) {
	merged := Combine(nil)

	if !reflect.DeepEqual(merged, Defaults()) {
		t.Errorf("merging no partials should yield the defaults, got %v", merged)
	}
}

func TestCombineLaterPartialWins(t *testing.T) {
	partials := []Document{
		{"driver": map[string]any{"name": "docker"}},
		{"driver": map[string]any{"name": "vagrant"}},
	}

	merged := Combine(partials)

	driverSection := merged["driver"].(map[string]any)
	if driverSection["name"] != "vagrant" {
		t.Errorf("expected last partial to win, got driver name %v", driverSection["name"])
	}
}

func TestCombineKeyOnlyInLaterPartial(t *testing.T) {
	partials := []Document{
		{"driver": map[string]any{"name": "docker"}},
		{"extra": "value"},
	}

	merged := Combine(partials)

	if merged["extra"] != "value" {
		t.Errorf("expected key from later partial to be carried, got %v", merged["extra"])
	}
}

func TestMergeSequencesReplacedWholesale(t *testing.T) {
	a := map[string]any{
		"platforms": []any{
			map[string]any{"name": "one"},
			map[string]any{"name": "two"},
		},
	}
	b := map[string]any{
		"platforms": []any{
			map[string]any{"name": "three"},
		},
	}

	merged := MergeMaps(a, b)

	platforms := merged["platforms"].([]any)
	if len(platforms) != 1 {
		t.Fatalf("expected list replacement, not concatenation, got %d entries", len(platforms))
	}
	if platforms[0].(map[string]any)["name"] != "three" {
		t.Errorf("expected the later list verbatim, got %v", platforms[0])
	}
}

func TestMergeNestedDisjointKeysUnion(t *testing.T) {
	a := map[string]any{
		"provisioner": map[string]any{
			"options": map[string]any{"diff": true},
		},
	}
	b := map[string]any{
		"provisioner": map[string]any{
			"options": map[string]any{"become": true},
		},
	}

	merged := MergeMaps(a, b)

	options := merged["provisioner"].(map[string]any)["options"].(map[string]any)
	if options["diff"] != true || options["become"] != true {
		t.Errorf("expected union of disjoint leaf keys, got %v", options)
	}
}

func TestMergeScalarReplacesMapping(t *testing.T) {
	a := map[string]any{"driver": map[string]any{"name": "docker"}}
	b := map[string]any{"driver": "bare"}

	merged := MergeMaps(a, b)

	// Structural mismatch replaces silently, never errors.
	if merged["driver"] != "bare" {
		t.Errorf("expected scalar to replace mapping, got %v", merged["driver"])
	}
}

func TestCombineOrderSensitive(t *testing.T) {
	a := Document{"driver": map[string]any{"name": "a"}}
	b := Document{"driver": map[string]any{"name": "b"}}

	ab := Combine([]Document{a, b})
	ba := Combine([]Document{b, a})

	if name := ab["driver"].(map[string]any)["name"]; name != "b" {
		t.Errorf("[a, b]: expected b to win, got %v", name)
	}
	if name := ba["driver"].(map[string]any)["name"]; name != "a" {
		t.Errorf("[b, a]: expected a to win, got %v", name)
	}
}

func TestCombineFoldsLeftToRight(t *testing.T) {
	a := Document{"driver": map[string]any{"name": "a", "options": map[string]any{"x": 1}}}
	b := Document{"driver": map[string]any{"name": "b"}}

	combined := Combine([]Document{a, b})
	folded := MergeMaps(Combine([]Document{a}), b)

	if !reflect.DeepEqual(combined, folded) {
		t.Errorf("batched merge diverged from left fold:\ncombined: %v\nfolded:   %v", combined, folded)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := map[string]any{
		"driver":    map[string]any{"name": "docker", "options": map[string]any{"x": 1}},
		"platforms": []any{map[string]any{"name": "one"}},
	}
	b := map[string]any{
		"driver":    map[string]any{"name": "vagrant"},
		"platforms": []any{map[string]any{"name": "two"}},
	}
	wantA := map[string]any{
		"driver":    map[string]any{"name": "docker", "options": map[string]any{"x": 1}},
		"platforms": []any{map[string]any{"name": "one"}},
	}
	wantB := map[string]any{
		"driver":    map[string]any{"name": "vagrant"},
		"platforms": []any{map[string]any{"name": "two"}},
	}

	merged := MergeMaps(a, b)

	if !reflect.DeepEqual(a, wantA) {
		t.Errorf("left input mutated: %v", a)
	}
	if !reflect.DeepEqual(b, wantB) {
		t.Errorf("right input mutated: %v", b)
	}

	// Mutating the result must not reach back into the inputs either.
	merged["driver"].(map[string]any)["name"] = "changed"
	if b["driver"].(map[string]any)["name"] != "vagrant" {
		t.Error("result shares mapping storage with input")
	}
}

func TestCombineEndToEnd(t *testing.T) {
	partials := []Document{
		{"driver": map[string]any{"name": "docker"}},
		{"platforms": []any{map[string]any{"name": "instance"}}},
	}

	merged := Combine(partials)

	if name := merged["driver"].(map[string]any)["name"]; name != "docker" {
		t.Errorf("expected driver name docker, got %v", name)
	}

	platforms := merged["platforms"].([]any)
	if len(platforms) != 1 || platforms[0].(map[string]any)["name"] != "instance" {
		t.Errorf("expected platforms from the later partial, got %v", platforms)
	}

	// Untouched by either partial, inherited from the defaults.
	if name := merged["verifier"].(map[string]any)["name"]; name != "testinfra" {
		t.Errorf("expected verifier name testinfra from defaults, got %v", name)
	}
}

func TestDefaultsFreshPerCall(t *testing.T) {
	first := Defaults()
	first["driver"].(map[string]any)["name"] = "mutated"

	second := Defaults()
	if second["driver"].(map[string]any)["name"] != "docker" {
		t.Error("defaults document is shared between calls")
	}
}

func TestDefaultsConcernGroupsPresent(t *testing.T) {
	merged := Combine(nil)

	for _, group := range []string{"dependency", "driver", "lint", "provisioner", "scenario", "verifier"} {
		if _, ok := merged[group].(map[string]any); !ok {
			t.Errorf("concern group %q missing after merge", group)
		}
	}
	if _, ok := merged["platforms"]; !ok {
		t.Error("platforms missing after merge")
	}
}
