package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider.
type MockResponse struct {
	Content   json.RawMessage
	Usage     Usage
	Truncated bool
	Err       error
}

// MockProvider replays scripted responses in order and records every
// request, so tests can assert on both sides of the exchange.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

// NewMockProvider scripts the given responses, consumed FIFO.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate records the request and pops the next scripted response.
// An exhausted script yields ErrProviderUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:   next.Content,
		Usage:     next.Usage,
		Model:     "mock",
		Truncated: next.Truncated,
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount reports how many requests were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or a zero Request when
// none were made.
func (m *MockProvider) LastCall() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}
	}
	return m.Calls[len(m.Calls)-1]
}
