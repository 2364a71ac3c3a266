package store

// Memory is a Blob held entirely in a map. It backs tests and throwaway
// sessions; nothing survives the process.
type Memory struct {
	records map[string][]byte
}

// NewMemory returns an empty in-memory blob store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	val, ok := m.records[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (m *Memory) Write(key string, val []byte) error {
	cp := make([]byte, len(val))
	copy(cp, val)
	m.records[key] = cp
	return nil
}

func (m *Memory) Erase(key string) error {
	if _, ok := m.records[key]; !ok {
		return &MissingKeyError{Key: key}
	}
	delete(m.records, key)
	return nil
}

func (m *Memory) Has(key string) bool {
	_, ok := m.records[key]
	return ok
}

// Keys lists the stored keys, for test assertions.
func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	return keys
}

// MissingKeyError reports a read or erase of an absent key.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return "store: no record for key " + e.Key
}
