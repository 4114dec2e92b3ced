// Package assets bundles the aquarium artwork. Regenerate with `go run ./cmd/mkassets`.
package assets

import "embed"

//go:embed *.png
var FS embed.FS
