// Package clipboard abstracts the copy-result collaborator. A server
// process has no system clipboard, so the production implementation just
// retains the last copied text for the client to fetch.
package clipboard

import (
	"context"
	"sync"
)

// Clipboard accepts the formatted calculation result.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// Memory keeps the last copied text in memory.
type Memory struct {
	mu   sync.Mutex
	last string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Copy(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = text
	return nil
}

// Last returns the most recently copied text.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
