package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/codeshack/internal/common"
)

// MemoryStore is an in-process Store. It keeps the raw key/value pairs the
// same way the SQLite store does, so tests can plant malformed records.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token := m.data[common.TokenStorageKey]
	rawUser := m.data[common.UserStorageKey]
	if len(token) == 0 || len(rawUser) == 0 {
		return nil, nil
	}
	user, ok := decodeUser(rawUser)
	if !ok {
		return nil, nil
	}
	return &Session{Token: string(token), User: user}, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	rawUser, err := encodeUser(s.User)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[common.TokenStorageKey] = []byte(s.Token)
	m.data[common.UserStorageKey] = rawUser
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, common.TokenStorageKey)
	delete(m.data, common.UserStorageKey)
	return nil
}

// Put stores a raw value under key.
func (m *MemoryStore) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}
