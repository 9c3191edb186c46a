// Package web provides the embedded static assets (CSS, JS) of the public
// site, served at /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFS embed.FS

// Static returns the static/ tree rooted at its top directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static/ is embedded at build time; a failure here is a build defect.
		panic(err)
	}
	return sub
}
