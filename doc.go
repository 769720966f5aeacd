// Package bookstall serves a fixed, read-only catalog of books over HTTP.
//
// The root package holds the domain model and the presentation helpers that
// turn catalog items into HTML. Request handling lives in the http package,
// which composes an ordered pipeline of stages on top of these types.
//
// # Key Components
//
//   - Item: a single catalog record (name, category, price)
//   - Catalog: an immutable, ordered collection of items shared by every request
//   - RenderTable / RenderPage: deterministic HTML rendering of item lists
//
// # Example Usage
//
//	catalog := bookstall.NewCatalog(
//	    bookstall.Item{Name: "Book 1", Category: "Music", Price: 201},
//	    bookstall.Item{Name: "Book 2", Category: "StandUp", Price: 200},
//	)
//
//	html := bookstall.RenderPage(
//	    bookstall.RenderTable(catalog.ByCategory("music")),
//	    "Category: music",
//	)
//
// See the seed package for loading a catalog from configuration and the http
// package for the request pipeline.
package bookstall
