package windows

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// Store is the key/value storage shared by every instance of the registry.
// Load returns nil data without error for a missing key.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// GDataStore persists items with gdata: files under the user data dir on
// desktop and localStorage in the browser.
type GDataStore struct {
	m *gdata.Manager
}

// OpenGDataStore opens the gdata storage for appName.
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) Load(key string) ([]byte, error) {
	return s.m.LoadItem(key)
}

func (s *GDataStore) Save(key string, data []byte) error {
	return s.m.SaveItem(key, data)
}

// MemoryStore keeps items in memory. Several managers can share one to
// behave like instances sharing storage.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data == nil {
		delete(s.items, key)
		return nil
	}
	s.items[key] = append([]byte(nil), data...)
	return nil
}
