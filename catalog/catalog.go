// Package catalog embeds the built-in question catalog YAML into the binary.
package catalog

import "embed"

// Embedded contains the built-in questionnaire YAML files.
//
//go:embed baseline/*.yaml
var Embedded embed.FS
