package gearpress

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearpress/gearpress/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists the home page; posts have no pages of their own, so
// the newest post's date stands in as the listing's last modification.
func (a *App) renderSitemap(c echo.Context, posts []views.Post) error {
	home := sitemapURL{Loc: BuildURL(a.Config.URL)}
	if len(posts) > 0 {
		home.LastMod = posts[0].CreatedAt.Format("2006-01-02")
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{home},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
