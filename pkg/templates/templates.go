// Package templates embeds files installed on the first run of meigen.
package templates

import _ "embed"

// ConfigYAML is the documented config.yaml copied to ~/.config/meigen.
//
//go:embed config.yaml
var ConfigYAML string
