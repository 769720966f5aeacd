package http

import (
	"log/slog"
	"net/http"

	"github.com/sagarc03/bookstall"
)

const (
	pathGetBooks = "/getBooks"

	invalidTokenMessage = "token is invalid"
)

// TokenVerifier checks a shared-secret token. Verify returns nil only for an
// accepted token.
type TokenVerifier interface {
	Verify(token string) error
}

// TokenFilterStage serves the category-filtered catalog to callers presenting
// a valid token.
type TokenFilterStage struct {
	catalog  *bookstall.Catalog
	verifier TokenVerifier
}

// NewTokenFilterStage creates a TokenFilterStage. A nil verifier rejects every token.
func NewTokenFilterStage(catalog *bookstall.Catalog, verifier TokenVerifier) *TokenFilterStage {
	return &TokenFilterStage{
		catalog:  catalog,
		verifier: verifier,
	}
}

func (s *TokenFilterStage) TryHandle(r *http.Request) (Response, bool) {
	if r.URL.Path != pathGetBooks {
		return Response{}, false
	}

	query := r.URL.Query()

	if err := s.verify(query.Get("token")); err != nil {
		slog.WarnContext(r.Context(), "token rejected",
			"request_id", GetRequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		return TextResponse(http.StatusForbidden, invalidTokenMessage), true
	}

	category := query.Get("category")
	table := bookstall.RenderTable(s.catalog.ByCategory(category))

	return HTMLResponse(http.StatusOK, bookstall.RenderPage(table, "Category: "+category)), true
}

func (s *TokenFilterStage) verify(token string) error {
	if s.verifier == nil {
		return bookstall.ErrUnauthorized
	}
	return s.verifier.Verify(token)
}
