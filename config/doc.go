// Package config loads an open-graph problem instance — vertex count,
// edge list, input/output sets, and an optional plane assignment — from
// YAML, using gopkg.in/yaml.v3. It is a standalone loader: no other
// package in this repository calls it, and the property tests build
// their instances with internal/fixtures instead (SPEC_FULL.md §1's
// "Ambient Stack" / "Configuration" and §4's `config` component). It
// mirrors the
// teacher's functional-options config resolution
// (builder.newBuilderConfig / builder.BuilderOption) but trades
// "construct a graph from RNG knobs" for "parse a graph from a file".
package config
