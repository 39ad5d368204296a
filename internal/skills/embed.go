// Package skills bundles the spiker SKILL.md and registers it with the
// guppi skill registry.
package skills

import (
	_ "embed"
)

// FileName is the name of a skill document on disk.
const FileName = "SKILL.md"

//go:embed SKILL.md
var embeddedSkill []byte
