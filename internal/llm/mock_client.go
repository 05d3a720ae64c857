package llm

import (
	"context"
	"sync"
)

// MockClient is a scripted Client implementation for tests.
type MockClient struct {
	Err      error
	Response string
	mu       sync.Mutex
	calls    int
}

// Complete returns the scripted response or error.
func (m *MockClient) Complete(_ context.Context, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Calls reports how many times Complete was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
