package placement

import (
	"context"
)

// Recorder is an in-memory Placer that keeps every request in order.
// It is not safe for concurrent use.
type Recorder struct {
	requests []Request
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Place records the request
func (r *Recorder) Place(_ context.Context, req Request) error {
	r.requests = append(r.requests, req)
	return nil
}

// Requests returns a copy of the recorded requests in arrival order
func (r *Recorder) Requests() []Request {
	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out
}

// ByArchetype returns the recorded requests for one archetype
func (r *Recorder) ByArchetype(archetype string) []Request {
	var out []Request
	for _, req := range r.requests {
		if req.Archetype == archetype {
			out = append(out, req)
		}
	}
	return out
}

// Len returns the number of recorded requests
func (r *Recorder) Len() int {
	return len(r.requests)
}
