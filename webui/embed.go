// Package webui exposes the embedded site templates and static assets.
// It lives at the module root to embed the sibling "web/" directory;
// internal/server imports it to render pages and serve /static.
package webui

import "embed"

// FS is the embedded web directory tree:
//
//	web/templates  html/template pages and partials
//	web/static     css, js and icons served under /static
//
//go:embed web
var FS embed.FS
