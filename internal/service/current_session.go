package service

import (
	"sync"

	"doc-qa-be/pkg/index"
	"doc-qa-be/pkg/store"
)

// CurrentSession holds the session the process is actively answering
// questions against, with its search index prebuilt. The guarded pointer is
// the only mutable state queries share with session management.
type CurrentSession struct {
	mu      sync.RWMutex
	session *store.SessionIndex
	index   *index.VectorIndex
}

func NewCurrentSession() *CurrentSession {
	return &CurrentSession{}
}

// Install replaces the current session and builds its index.
func (c *CurrentSession) Install(session *store.SessionIndex) {
	ix := index.New(session.Passages)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = session
	c.index = ix
}

// Get returns the loaded session and its index, if any.
func (c *CurrentSession) Get() (*store.SessionIndex, *index.VectorIndex, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil, nil, false
	}
	return c.session, c.index, true
}

// View returns the listing fields of the loaded session.
func (c *CurrentSession) View() (sessionId string, files []string, paragraphCount int, loaded bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return "", nil, 0, false
	}
	return c.session.SessionId, c.session.Files, len(c.session.Passages), true
}

// ClearIf drops the current session when it matches the given id.
func (c *CurrentSession) ClearIf(sessionId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && c.session.SessionId == sessionId {
		c.session = nil
		c.index = nil
	}
}
