// assets/assets.go
package assets

import "embed"

// ThemesPath is the catalog file inside ThemesFS.
const ThemesPath = "themes.yaml"

//go:embed themes.yaml
var ThemesFS embed.FS
