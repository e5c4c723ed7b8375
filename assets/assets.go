// Package assets embeds the prebuilt web UI. Run cmd/minify after
// changing the template, stylesheet or script.
package assets

import _ "embed"

// Index is the minified upload page, generated by cmd/minify.
//
//go:embed index.html
var Index []byte
