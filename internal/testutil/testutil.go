// Package testutil provides common test utilities, mocks, and helpers for testing.
package testutil

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// MockObjectStore is an in-memory object store for testing. Unlike the real
// backends it keeps every written object in Objects, where tests can inspect
// or pre-seed them.
type MockObjectStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	GetErr  error
	PutErr  error
	ListErr error
}

// NewMockObjectStore creates a new MockObjectStore.
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		Objects: make(map[string][]byte),
	}
}

// GetObject mocks reading an object.
func (m *MockObjectStore) GetObject(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	data, ok := m.Objects[key]
	if !ok {
		return nil, &ObjectNotFoundError{Key: key}
	}
	return data, nil
}

// PutObject mocks writing an object.
func (m *MockObjectStore) PutObject(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PutErr != nil {
		return m.PutErr
	}

	m.Objects[key] = data
	return nil
}

// ListObjects mocks listing objects, returning sorted keys under prefix.
func (m *MockObjectStore) ListObjects(prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	keys := make([]string, 0, len(m.Objects))
	for key := range m.Objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// ObjectCount returns the number of stored objects.
func (m *MockObjectStore) ObjectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Objects)
}

// GetObjectAsMap returns a stored JSON object as a map, or nil when the key
// is missing or not valid JSON.
func (m *MockObjectStore) GetObjectAsMap(key string) map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.Objects[key]
	if !ok {
		return nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return result
}

// ObjectNotFoundError is returned when a stored object is not found.
type ObjectNotFoundError struct {
	Key string
}

func (e *ObjectNotFoundError) Error() string {
	return "object not found: " + e.Key
}
