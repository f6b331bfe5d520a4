package generation

import (
	"context"
	"sync"

	"github.com/howaiconnects/seogate/llm"
)

// fakeProvider is a scripted llm.Provider for tests. respond is invoked
// per call with the request; concurrent calls are serialized by mu only
// for the recorded request log.
type fakeProvider struct {
	name    string
	model   string
	respond func(req llm.Request) (llm.Response, error)

	mu       sync.Mutex
	requests []llm.Request
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.model }

func (f *fakeProvider) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeProvider) recorded() []llm.Request {
	f.mu.Lock()
	out := make([]llm.Request, len(f.requests))
	copy(out, f.requests)
	f.mu.Unlock()
	return out
}

// staticProvider returns the same content for every request.
func staticProvider(name, model, content string) *fakeProvider {
	return &fakeProvider{
		name:  name,
		model: model,
		respond: func(llm.Request) (llm.Response, error) {
			return llm.Response{Content: content, StopReason: "stop"}, nil
		},
	}
}
