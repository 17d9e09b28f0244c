// Package frontend embeds the built dashboard assets served by the HTTP
// catch-all route.
package frontend

import "embed"

//go:embed dist
var StaticFiles embed.FS
