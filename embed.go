package gearpress

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmbeddedAssets contains static assets shipped with the engine:
// style.css, dashboard.js, feed.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// registerEmbeddedAssets serves the engine's own assets under /public/,
// ahead of the user's static directory.
func registerEmbeddedAssets(e *echo.Echo) {
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	handler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	e.GET("/public/style.css", handler)
	e.GET("/public/dashboard.js", handler)
	e.GET("/public/feed.js", handler)
}
