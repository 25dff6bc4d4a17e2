package cleanblog

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	DC      string     `xml:"xmlns:dc,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	Author      string  `xml:"dc:creator,omitempty"`
	PubDate     string  `xml:"pubDate,omitempty"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// buildFeed lists posts newest first. posts must be in insertion order.
func buildFeed(cfg SiteConfig, posts []BlogPost) rssFeed {
	items := make([]rssItem, 0, len(posts))
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		link := BuildURL(cfg.URL, p.Link())
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Subtitle,
			Author:      p.Author,
			PubDate:     RFC1123Date(p.Date),
			GUID:        rssGUID{IsPermaLink: true, Value: link},
		})
	}
	ch := rssChannel{
		Title:       cfg.Name,
		Link:        BuildURL(cfg.URL),
		Description: cfg.Description,
		Language:    "en",
		Items:       items,
	}
	if len(items) > 0 {
		ch.LastBuildDate = items[0].PubDate
	}
	return rssFeed{Version: "2.0", DC: "http://purl.org/dc/elements/1.1/", Channel: ch}
}

func buildSitemap(cfg SiteConfig, posts []BlogPost) urlSet {
	set := urlSet{XMLNS: sitemapNS}
	for _, page := range []string{"", "about", "contact"} {
		loc := BuildURL(cfg.URL)
		if page != "" {
			loc = BuildURL(cfg.URL, page)
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: loc})
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     BuildURL(cfg.URL, p.Link()),
			LastMod: ISODate(p.Date),
		})
	}
	return set
}

// writeXML marshals v with the XML declaration and writes it as a 200.
func writeXML(c echo.Context, contentType string, v any) error {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, append([]byte(xml.Header), out...))
}
