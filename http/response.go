package http

import (
	"io"
	"log/slog"
	"net/http"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
)

// Response is the complete answer a stage produces for a request.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// TextResponse builds a plain-text response.
func TextResponse(status int, body string) Response {
	return Response{Status: status, ContentType: contentTypeText, Body: body}
}

// HTMLResponse builds an HTML response.
func HTMLResponse(status int, body string) Response {
	return Response{Status: status, ContentType: contentTypeHTML, Body: body}
}

// WriteResponse writes resp to w. It must be called at most once per request.
func WriteResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.Status)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		slog.Debug("failed to write response body", "error", err)
	}
}
