// Package markdown implements the conversion side of the ingestion pipeline:
// front-matter extraction from raw source bytes and Markdown-to-HTML rendering
// through a reusable Goldmark adapter.
package markdown
