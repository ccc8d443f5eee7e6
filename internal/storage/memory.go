package storage

import "sync"

// Memory is an in-process KV used by tests and as a scratch backend
type Memory struct {
	mtx   sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Put(key string, data []byte) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	delete(m.blobs, key)
	return nil
}

// Keys returns the stored key names, for test assertions
func (m *Memory) Keys() []string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	keys := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		keys = append(keys, k)
	}
	return keys
}
