// Package web embeds the HTML templates served by the handler package.
package web

import "embed"

// Templates holds layout.html, partials.html and one file per page under templates/.
//
//go:embed templates/*.html
var Templates embed.FS
