package assets

import "embed"

//go:embed style.css favicon.svg
var FS embed.FS
