package database

// MemoryStore is an in-memory Store used in tests and as a fallback when no
// database is available. Values are copied on the way in and out.
type MemoryStore struct {
	data map[string][]byte

	// FailSaves makes every Save return an error, for exercising the
	// write-failure path.
	FailSaves error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

// Load returns the blob stored under key, or (nil, nil) when absent.
func (m *MemoryStore) Load(key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save stores a copy of value under key.
func (m *MemoryStore) Save(key string, value []byte) error {
	if m.FailSaves != nil {
		return m.FailSaves
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete removes the given keys.
func (m *MemoryStore) Delete(keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
