package history

// #region mem-store

// MemStore is an in-memory KVStore. Used by tests and by hosts that
// deliberately run without persistence.
type MemStore struct {
	data map[string][]byte

	// FailGet / FailSet force errors, for degradation tests.
	FailGet error
	FailSet error
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Get returns the stored value, if any.
func (m *MemStore) Get(key string) ([]byte, bool, error) {
	if m.FailGet != nil {
		return nil, false, m.FailGet
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores a copy of value under key.
func (m *MemStore) Set(key string, value []byte) error {
	if m.FailSet != nil {
		return m.FailSet
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// #endregion
