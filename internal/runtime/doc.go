// Package runtime runs external tools on behalf of the scaffolder. The Runner
// interface is the seam between the install orchestration and real process
// execution; ExecRunner is the production implementation.
package runtime
