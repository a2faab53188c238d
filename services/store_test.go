package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"
)

// memoryStore is an in-memory KVStore for tests, honoring per-key expiry
// the way the real store does.
type memoryStore struct {
	mu     sync.Mutex
	data   map[string]string
	expiry map[string]time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		data:   make(map[string]string),
		expiry: make(map[string]time.Time),
	}
}

func (m *memoryStore) expired(key string) bool {
	if exp, ok := m.expiry[key]; ok && time.Now().After(exp) {
		delete(m.data, key)
		delete(m.expiry, key)
		return true
	}
	return false
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.expired(key) {
		return "", nil
	}
	return m.data[key], nil
}

func (m *memoryStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch v := value.(type) {
	case string:
		m.data[key] = v
	case []byte:
		m.data[key] = string(v)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		m.data[key] = string(b)
	}

	if expiration > 0 {
		m.expiry[key] = time.Now().Add(expiration)
	} else {
		delete(m.expiry, key)
	}
	return nil
}

func (m *memoryStore) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expired(key)

	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *memoryStore) Expire(_ context.Context, key string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiry[key] = time.Now().Add(expiration)
	return nil
}

func (m *memoryStore) Keys(_ context.Context, pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := strings.TrimSuffix(pattern, "*")
	keys := make([]string, 0)
	for key := range m.data {
		if m.expired(key) {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// forceExpire backdates a key's TTL so the next read treats it as gone.
func (m *memoryStore) forceExpire(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiry[key] = time.Now().Add(-time.Second)
}

// errStore fails every operation, for exercising dependency-failure paths.
type errStore struct {
	err error
}

func (e *errStore) Get(context.Context, string) (string, error) { return "", e.err }

func (e *errStore) Set(context.Context, string, interface{}, time.Duration) error {
	return e.err
}

func (e *errStore) Incr(context.Context, string) (int64, error) { return 0, e.err }

func (e *errStore) Expire(context.Context, string, time.Duration) error { return e.err }

func (e *errStore) Keys(context.Context, string) ([]string, error) { return nil, e.err }
