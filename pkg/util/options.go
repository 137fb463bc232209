// Package util holds small helpers shared by the capability providers.
package util

import (
	"fmt"
	"sort"
)

// BuildOptionArgs converts a provider options map into command-line
// arguments. Keys are emitted in sorted order so the resulting command line
// is deterministic.
//
// Boolean true becomes a bare flag (--force), boolean false is dropped, and
// every other value becomes --key=value.
func BuildOptionArgs(options map[string]any) []string {
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys))
	for _, key := range keys {
		switch value := options[key].(type) {
		case bool:
			if value {
				args = append(args, "--"+key)
			}
		default:
			args = append(args, fmt.Sprintf("--%s=%v", key, value))
		}
	}
	return args
}
