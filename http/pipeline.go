package http

import (
	"net/http"
)

// Stage is one step of the request pipeline. TryHandle either produces the
// complete Response and returns true, or returns false without side effects so
// the next stage is tried.
type Stage interface {
	TryHandle(r *http.Request) (Response, bool)
}

// StageFunc adapts an ordinary function to the Stage interface.
type StageFunc func(r *http.Request) (Response, bool)

// TryHandle calls f(r).
func (f StageFunc) TryHandle(r *http.Request) (Response, bool) {
	return f(r)
}

// Pipeline offers each request to its stages in order and falls back to a
// terminal handler when none of them handles it.
type Pipeline struct {
	stages   []Stage
	fallback func(r *http.Request) Response
}

// NewPipeline creates a pipeline trying stages in the given order. A nil
// fallback defaults to NotFound.
func NewPipeline(fallback func(r *http.Request) Response, stages ...Stage) *Pipeline {
	if fallback == nil {
		fallback = NotFound
	}
	return &Pipeline{
		stages:   stages,
		fallback: fallback,
	}
}

// Dispatch returns the Response of the first stage that handles r, or the
// fallback's Response if none does.
func (p *Pipeline) Dispatch(r *http.Request) Response {
	for _, stage := range p.stages {
		if resp, ok := stage.TryHandle(r); ok {
			return resp
		}
	}
	return p.fallback(r)
}

// ServeHTTP writes the dispatched Response.
func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, p.Dispatch(r))
}

// NotFound is the terminal handler for requests no stage matched.
func NotFound(_ *http.Request) Response {
	return TextResponse(http.StatusBadRequest, "page not found")
}
