package devices

import (
	"fmt"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/ini.v1"
)

// profileCacheSize bounds the per-identity lookup cache. Controllers come
// and go but rarely more than a handful per session.
const profileCacheSize = 32

// ProfileStore persists the configured type per controller identity. The
// registry depends only on these two operations.
type ProfileStore interface {
	// LoadAll returns every saved identity-to-type mapping.
	LoadAll() (map[string]ControllerType, error)

	// Save records the type for one identity.
	Save(id string, t ControllerType) error
}

// IniProfileStore keeps controller type preferences in an ini file, one
// section per controller identity. An LRU cache in front of the file means
// repeated connects of the same controller skip the parse.
type IniProfileStore struct {
	mu    sync.Mutex
	path  string
	cache *lru.Cache[string, ControllerType]
}

// NewIniProfileStore creates a store backed by the ini file at path. The
// file does not need to exist yet.
func NewIniProfileStore(path string) (*IniProfileStore, error) {
	cache, err := lru.New[string, ControllerType](profileCacheSize)
	if err != nil {
		return nil, err
	}

	return &IniProfileStore{path: path, cache: cache}, nil
}

// LoadAll parses the backing file and returns all saved mappings. A missing
// file is an empty store, not an error.
func (s *IniProfileStore) LoadAll() (map[string]ControllerType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return map[string]ControllerType{}, nil
	}

	result := make(map[string]ControllerType)
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		t, err := ParseControllerType(section.Key("type").String())
		if err != nil {
			// skip entries written by a newer version
			continue
		}

		result[section.Name()] = t
		s.cache.Add(section.Name(), t)
	}

	return result, nil
}

// Save writes the type for one identity, preserving all other entries.
func (s *IniProfileStore) Save(id string, t ControllerType) error {
	if id == "" {
		return fmt.Errorf("controller id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = ini.Empty()
	}

	cfg.Section(id).Key("type").SetValue(t.String())
	if err := cfg.SaveTo(s.path); err != nil {
		return fmt.Errorf("failed to save controller profile: %w", err)
	}

	s.cache.Add(id, t)
	return nil
}

// Lookup resolves the saved type for one identity, hitting the cache before
// falling back to a file parse.
func (s *IniProfileStore) Lookup(id string) (ControllerType, bool) {
	s.mu.Lock()
	if t, ok := s.cache.Get(id); ok {
		s.mu.Unlock()
		return t, true
	}
	s.mu.Unlock()

	all, err := s.LoadAll()
	if err != nil {
		return 0, false
	}

	t, ok := all[id]
	return t, ok
}

// load parses the backing file, returning nil when it does not exist.
// Caller must hold s.mu.
func (s *IniProfileStore) load() (*ini.File, error) {
	cfg, err := ini.Load(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load controller profiles: %w", err)
	}
	return cfg, nil
}
