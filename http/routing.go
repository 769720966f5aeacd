package http

import (
	"net/http"

	"github.com/sagarc03/bookstall"
)

const (
	pathWelcome  = "/"
	pathAllBooks = "/allbooks"

	welcomeMessage = "hello, it's Welcome Page!"
	allBooksTitle  = "all Books"
)

// RoutingStage answers the public pages: the welcome text and the full catalog.
type RoutingStage struct {
	catalog *bookstall.Catalog
}

// NewRoutingStage creates a RoutingStage serving catalog.
func NewRoutingStage(catalog *bookstall.Catalog) *RoutingStage {
	return &RoutingStage{catalog: catalog}
}

func (s *RoutingStage) TryHandle(r *http.Request) (Response, bool) {
	switch r.URL.Path {
	case pathWelcome:
		return TextResponse(http.StatusOK, welcomeMessage), true
	case pathAllBooks:
		table := bookstall.RenderTable(s.catalog.Items())
		return HTMLResponse(http.StatusOK, bookstall.RenderPage(table, allBooksTitle)), true
	default:
		return Response{}, false
	}
}
