package views

import (
	"encoding/json"
	"html"
	"strings"
	"unicode/utf8"
)

// esc escapes &, <, >, " and ' so user-entered text can be written into
// markup or attribute values without injection.
func esc(s string) string {
	return html.EscapeString(s)
}

// ShowImage reports whether a post's image URL should be rendered.
// Only URLs that begin with "http" are trusted into an <img> tag.
func ShowImage(imageURL string) bool {
	return strings.HasPrefix(imageURL, "http")
}

// ShowLink reports whether a post's external link should be rendered.
// Empty, whitespace-only, and "#" placeholder links are suppressed.
func ShowLink(link string) bool {
	trimmed := strings.TrimSpace(link)
	return trimmed != "" && trimmed != "#"
}

// Excerpt truncates a description to at most n runes for card display.
func Excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	// cfg.URL is already canonical (no trailing slash), so it goes in as-is.
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      cfg.URL,
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
