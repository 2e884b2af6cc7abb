// Package config manages user-level settings stored at ~/.create-mern/config.yaml.
// Values can be overridden with CREATE_MERN_* environment variables. Only the
// CLI entry point reads them; the scaffolding phases receive a project.Spec.
package config
