package web

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const maxFeedItems = 100

type feedItem struct {
	Title       string
	Summary     string
	Author      string
	Link        string
	GUID        string
	PublishedAt time.Time
}

// feedItems projects the collection into feed entries. The collection is
// already date-descending, so entries arrive newest first; the cap keeps
// feeds bounded as the archive grows.
func (s *Server) feedItems() []feedItem {
	all := s.cfg.Posts.All()
	if len(all) > maxFeedItems {
		all = all[:maxFeedItems]
	}

	items := make([]feedItem, 0, len(all))
	for _, p := range all {
		link := s.postURL(p)
		items = append(items, feedItem{
			Title:       p.Title,
			Summary:     p.Summary,
			Author:      p.Author,
			Link:        link,
			GUID:        link,
			PublishedAt: p.Date,
		})
	}
	return items
}

// feedUpdated derives the feed's updated timestamp: the most recent post date,
// or the current time for an empty collection.
func (s *Server) feedUpdated() time.Time {
	if updated := s.cfg.Posts.UpdatedAt(); !updated.IsZero() {
		return updated
	}
	return time.Now().UTC()
}

func (s *Server) buildAtomFeed() string {
	site := s.cfg.Site
	siteLink := s.routeURL("home")
	feedID := s.routeURL("atom")
	updated := s.feedUpdated()

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString(fmt.Sprintf("  <id>%s</id>\n", escapeXML(feedID)))
	builder.WriteString(fmt.Sprintf("  <title>%s</title>\n", escapeXML(site.Title)))
	builder.WriteString(fmt.Sprintf("  <updated>%s</updated>\n", updated.UTC().Format(time.RFC3339)))
	if site.Author != "" {
		builder.WriteString("  <author>\n")
		builder.WriteString(fmt.Sprintf("    <name>%s</name>\n", escapeXML(site.Author)))
		builder.WriteString("  </author>\n")
	}
	builder.WriteString(fmt.Sprintf(`  <link rel="alternate" href="%s" />`+"\n", escapeXMLAttr(siteLink)))
	builder.WriteString(fmt.Sprintf(`  <link rel="self" href="%s" />`+"\n", escapeXMLAttr(feedID)))
	for _, item := range s.feedItems() {
		builder.WriteString("  <entry>\n")
		builder.WriteString(fmt.Sprintf("    <id>%s</id>\n", escapeXML(item.GUID)))
		builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf(`    <link href="%s" />`+"\n", escapeXMLAttr(item.Link)))
		builder.WriteString(fmt.Sprintf("    <updated>%s</updated>\n", item.PublishedAt.UTC().Format(time.RFC3339)))
		builder.WriteString(fmt.Sprintf("    <published>%s</published>\n", item.PublishedAt.UTC().Format(time.RFC3339)))
		if item.Author != "" {
			builder.WriteString("    <author>\n")
			builder.WriteString(fmt.Sprintf("      <name>%s</name>\n", escapeXML(item.Author)))
			builder.WriteString("    </author>\n")
		}
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("    <summary>%s</summary>\n", escapeXML(item.Summary)))
		}
		builder.WriteString("  </entry>\n")
	}
	builder.WriteString(`</feed>` + "\n")
	return builder.String()
}

func (s *Server) buildRSSFeed() string {
	site := s.cfg.Site
	siteLink := s.routeURL("home")
	updated := s.feedUpdated()

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(site.Title)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(siteLink)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(site.Description)))
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", updated.UTC().Format(time.RFC1123Z)))
	for _, item := range s.feedItems() {
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", escapeXML(item.Link)))
		builder.WriteString(fmt.Sprintf("      <guid>%s</guid>\n", escapeXML(item.GUID)))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", item.PublishedAt.UTC().Format(time.RFC1123Z)))
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", escapeXML(item.Summary)))
		}
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString(`</rss>` + "\n")
	return builder.String()
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}

func escapeXMLAttr(value string) string {
	return html.EscapeString(value)
}
