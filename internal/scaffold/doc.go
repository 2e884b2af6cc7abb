// Package scaffold turns a planned project layout into files on disk and
// drives a full generator run: plan, validate manifests, materialize, then
// install dependencies for each sub-project. It powers the root command.
package scaffold
