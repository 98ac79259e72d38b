// Package web holds the HTML templates and browser assets compiled into the
// binary.
package web

import (
	"embed"
	"io/fs"
)

// Templates holds templates/{layouts,partials,pages}/*.html.
//
//go:embed templates
var Templates embed.FS

//go:embed static
var assets embed.FS

// Static returns the asset tree rooted at static/.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
