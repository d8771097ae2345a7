// Package configs provides embedded configuration templates for sitequery.
//
// Templates are embedded at build time with Go's //go:embed directive so
// they ship in every distribution (go install, binary release, Homebrew)
// without a separate asset step.
//
// Configuration hierarchy (see internal/config/config.go Load()):
//  1. Hardcoded defaults (internal/config/config.go NewConfig())
//  2. User config (~/.config/sitequery/config.yaml)
//  3. Project config (sitequery.yaml in the working directory)
//  4. SITEQUERY_* environment variables
package configs

import _ "embed"

// UserConfigTemplate is the template written by `sitequery config init` at
// ~/.config/sitequery/config.yaml — settings that apply to every project on
// this machine.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string

// ProjectConfigTemplate is the template for a project-level sitequery.yaml,
// version-controlled alongside a shard directory.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
