// Package posts turns a directory of date-prefixed Markdown sources into an
// immutable, queryable collection of rendered articles. The collection is
// built once at process start; after that it is read-only and safe for any
// number of concurrent readers.
package posts
