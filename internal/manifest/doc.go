// Package manifest validates npm package.json manifests against an embedded
// JSON Schema and checks version fields with semver. The scaffolder runs it
// over every planned manifest before writing anything.
package manifest
