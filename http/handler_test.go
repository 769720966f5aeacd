package http_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookstallhttp "github.com/sagarc03/bookstall/http"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	config := &bookstallhttp.HandlerConfig{
		Token:  testVerifier(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return bookstallhttp.NewHandler(config, testCatalog()).Router()
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Welcome(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/", "/?a=b", "/?token=token12345"} {
		rec := serve(router, "GET", target)

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "Welcome Page")
	}
}

func TestHandler_AllBooks(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, "GET", "/allbooks")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<th>Name</th><th>Category</th><th>Price</th><th>Action</th>")
	assert.Equal(t, 5, strings.Count(body, "<td>Book "))
	assert.Less(t, strings.Index(body, "Book 1"), strings.Index(body, "Book 5"))
}

func TestHandler_GetBooks(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantRows   int
		wantBody   string
	}{
		{name: "wrong token", target: "/getBooks?token=bad&category=Music", wantStatus: http.StatusForbidden, wantBody: "token is invalid"},
		{name: "missing token", target: "/getBooks?category=Music", wantStatus: http.StatusForbidden, wantBody: "token is invalid"},
		{name: "wrong token no category", target: "/getBooks?token=bad", wantStatus: http.StatusForbidden, wantBody: "token is invalid"},
		{name: "music", target: "/getBooks?token=token12345&category=Music", wantStatus: http.StatusOK, wantRows: 3},
		{name: "music lower", target: "/getBooks?token=token12345&category=music", wantStatus: http.StatusOK, wantRows: 3},
		{name: "standup upper", target: "/getBooks?token=token12345&category=STANDUP", wantStatus: http.StatusOK, wantRows: 1},
		{name: "no match", target: "/getBooks?token=token12345&category=Opera", wantStatus: http.StatusOK, wantRows: 0},
		{name: "no category", target: "/getBooks?token=token12345", wantStatus: http.StatusOK, wantRows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, "GET", tt.target)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.NotContains(t, rec.Body.String(), "Book")
				return
			}
			assert.Contains(t, rec.Body.String(), "<th>Action</th>")
			assert.Equal(t, tt.wantRows, strings.Count(rec.Body.String(), "<td>Book "))
		})
	}
}

func TestHandler_NotFound(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/missing", "/allbooks/", "/getbooks", "/getBooks/", "/a/b/c", "/Html/addUsers.html"} {
		t.Run(target, func(t *testing.T) {
			rec := serve(router, "GET", target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, "page not found", rec.Body.String())
		})
	}
}

func TestHandler_AnyMethod(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{"GET", "POST", "PUT", "DELETE", "PATCH", "TRACE", "PROPFIND", "FOO"} {
		t.Run(method, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, serve(router, method, "/").Code)
			assert.Equal(t, http.StatusOK, serve(router, method, "/allbooks").Code)
			assert.Equal(t, http.StatusForbidden, serve(router, method, "/getBooks").Code)
			assert.Equal(t, http.StatusBadRequest, serve(router, method, "/nope").Code)
		})
	}
}

func TestHandler_AsteriskTarget(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, "OPTIONS", "*")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "page not found", rec.Body.String())
}

func TestHandler_RenderPanicBecomesInternalError(t *testing.T) {
	config := &bookstallhttp.HandlerConfig{
		Token:  testVerifier(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	// a nil catalog makes rendering /allbooks panic
	router := bookstallhttp.NewHandler(config, nil).Router()

	var rec *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		rec = serve(router, "GET", "/allbooks")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<table")

	// requests that never touch the catalog are unaffected
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, "GET", "/other").Code)
}

func TestHandler_Idempotent(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/", "/allbooks", "/getBooks?token=token12345&category=music", "/getBooks?token=x", "/other"} {
		first := serve(router, "GET", target)
		second := serve(router, "GET", target)

		assert.Equal(t, first.Code, second.Code, target)
		assert.Equal(t, first.Header(), second.Header(), target)
		assert.True(t, bytes.Equal(first.Body.Bytes(), second.Body.Bytes()), target)
	}
}

func TestHandler_CORS(t *testing.T) {
	config := &bookstallhttp.HandlerConfig{
		Token: testVerifier(),
		CORS: bookstallhttp.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"https://example.com"},
			AllowedMethods: []string{"GET"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	router := bookstallhttp.NewHandler(config, testCatalog()).Router()

	req := httptest.NewRequest("GET", "/allbooks", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_CORSDisabled(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_PipelineWithoutMiddleware(t *testing.T) {
	handler := bookstallhttp.NewHandler(&bookstallhttp.HandlerConfig{Token: testVerifier()}, testCatalog())

	resp := handler.Pipeline().Dispatch(httptest.NewRequest("GET", "/getBooks?token=token12345&category=dance", nil))

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, 1, strings.Count(resp.Body, "<td>Book "))
}
