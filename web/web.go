// Package web holds the embedded view templates served by the console.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
