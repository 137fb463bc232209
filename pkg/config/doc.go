// Package config resolves the effective configuration for one rolespec
// scenario.
//
// A scenario's configuration is assembled in two stages. First an ordered
// list of partial documents is merged over a fixed defaults document with
// Combine: later partials override earlier ones, nested mappings merge key
// by key, and everything else (scalars, sequences) is replaced wholesale.
// Second, the merged document selects which capability provider handles
// each pluggable concern (dependency, driver, lint, provisioner, verifier)
// by the `name` key of the concern's section; the capability packages
// resolve those names against their closed provider sets.
//
// A Config owns its merged document. Construction merges the partials and
// guarantees the scenario's ephemeral working directory exists before the
// instance is returned. The merge is deliberately permissive: it never
// fails, and a structurally mismatched override (say, a scalar where the
// defaults hold a mapping) silently replaces rather than erroring. Full
// schema validation is explicitly not this package's job.
package config
