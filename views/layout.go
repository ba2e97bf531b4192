package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// component wraps a buffer-writing function as a templ.Component.
// Pages here are built by hand instead of generated templates; every dynamic
// value is escaped with esc before it reaches the buffer.
func component(fn func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// page writes the shared document shell around a body writer.
func page(buf *bytes.Buffer, cfg SiteConfig, title string, scripts []string, body func(*bytes.Buffer)) {
	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	buf.WriteString("<meta charset=\"utf-8\">")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
	buf.WriteString("<title>" + esc(title) + "</title>")
	if cfg.Description != "" {
		buf.WriteString("<meta name=\"description\" content=\"" + esc(cfg.Description) + "\">")
	}
	buf.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\">")
	buf.WriteString("<script type=\"application/ld+json\">" + WebsiteJsonLD(cfg) + "</script>")
	buf.WriteString("</head><body>")
	body(buf)
	for _, src := range scripts {
		buf.WriteString("<script src=\"" + esc(src) + "\" defer></script>")
	}
	buf.WriteString("</body></html>")
}

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Not Found — "+cfg.Name, nil, func(buf *bytes.Buffer) {
			buf.WriteString("<main class=\"status-page\"><h1>404</h1>")
			buf.WriteString("<p>That page does not exist.</p>")
			buf.WriteString("<a href=\"/\">Back to " + esc(cfg.Name) + "</a></main>")
		})
	})
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Something went wrong — "+cfg.Name, nil, func(buf *bytes.Buffer) {
			buf.WriteString("<main class=\"status-page\"><h1>500</h1>")
			buf.WriteString("<p>Something went wrong. Try again in a moment.</p>")
			buf.WriteString("<a href=\"/\">Back to " + esc(cfg.Name) + "</a></main>")
		})
	})
}
