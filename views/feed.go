package views

import (
	"bytes"

	"github.com/a-h/templ"
)

const excerptLength = 220

// gearHTML is the decorative element at the top of every card.
const gearHTML = `<div class="gear-container"><div class="gear gear-main"></div><div class="gear gear-small"></div></div>`

// Home renders the public blog listing: header, search box, and the card
// grid. Posts must already be sorted newest-first; they are written in that
// order so the newest post is visually first.
func Home(cfg SiteConfig, posts []Post, query string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, cfg.Name, []string{"/public/feed.js"}, func(buf *bytes.Buffer) {
			buf.WriteString("<header class=\"site-header\"><h1>" + esc(cfg.Name) + "</h1>")
			if cfg.Description != "" {
				buf.WriteString("<p class=\"site-tagline\">" + esc(cfg.Description) + "</p>")
			}
			buf.WriteString("</header>")
			buf.WriteString("<main><form class=\"search-bar\" action=\"/\" method=\"get\">")
			buf.WriteString("<input type=\"search\" id=\"search-input\" name=\"q\" placeholder=\"Search posts...\" value=\"" + esc(query) + "\">")
			buf.WriteString("</form>")
			buf.WriteString("<div class=\"blog-grid\">")
			if len(posts) == 0 {
				buf.WriteString("<p class=\"empty-note\">No posts found.</p>")
			}
			for _, p := range posts {
				writeCard(buf, p)
			}
			buf.WriteString("</div></main>")
		})
	})
}

// writeCard assembles one card: gears, optional image, title, excerpt,
// optional read-more link, in that order.
func writeCard(buf *bytes.Buffer, p Post) {
	buf.WriteString("<article class=\"blog-card has-gears\">")
	buf.WriteString(gearHTML)
	if ShowImage(p.ImageURL) {
		buf.WriteString("<img src=\"" + esc(p.ImageURL) + "\" alt=\"" + esc(p.Title) + "\" class=\"blog-image\" loading=\"lazy\">")
	}
	buf.WriteString("<h3 class=\"blog-title\">" + esc(p.Title) + "</h3>")
	buf.WriteString("<p class=\"blog-excerpt\">" + esc(Excerpt(p.Description, excerptLength)) + "</p>")
	if ShowLink(p.Link) {
		buf.WriteString("<a href=\"" + esc(p.Link) + "\" class=\"blog-meta\" target=\"_blank\" rel=\"noopener\">Read more</a>")
	}
	buf.WriteString("</article>")
}
