package gearpress

import (
	"net/url"
	"path"
	"strings"

	"github.com/gearpress/gearpress/views"
)

// FilterPosts returns the posts whose title contains query, case-insensitive.
// An empty (or whitespace-only) query returns the input unchanged. Order is
// preserved, so a newest-first input stays newest-first.
func FilterPosts(posts []views.Post, query string) []views.Post {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return posts
	}
	var matched []views.Post
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
