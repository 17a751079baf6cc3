// Package config resolves cmd/hdastar's run parameters from CLI flags,
// environment variables (prefixed HDASTAR_), and an optional config
// file, using spf13/viper — the same resolution layering
// junjiewwang-perf-analysis wires its own CLI flags through.
package config
