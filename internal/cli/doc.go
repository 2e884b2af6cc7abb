// Package cli defines the Cobra command tree for the create-mern CLI. The root
// command scaffolds a project; the remaining files each register one
// supporting command (plan, doctor, config, version). Commands delegate to
// internal packages and only handle arguments, configuration and output.
package cli
