// Package web holds the landing page template and the assets shipped with
// the binary. The wasm artefacts are built separately into the static dir.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed assets
var assets embed.FS

// Templates parses the page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}

// Assets is the embedded asset tree rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
