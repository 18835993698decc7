package storage

import (
	"fmt"
	"sync"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
)

// Storage provides access to the resolved configuration namespace.
type Storage interface {
	Snapshot() namespace.Namespace
	Get(key string) (any, error)
	Settings() (namespace.Settings, error)
}

// MemoryStorage keeps the namespace in-memory and guards access with a RWMutex.
// The namespace is fixed at construction; callers only read it.
type MemoryStorage struct {
	mu sync.RWMutex
	ns namespace.Namespace
}

// NewMemoryStorage initialises storage with the default namespace.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		ns: namespace.Initialize(nil),
	}
}

// NewMemoryStorageFrom initialises storage from a pre-seeded namespace. Seeded
// values win over defaults.
func NewMemoryStorageFrom(seed namespace.Namespace) (*MemoryStorage, error) {
	ns := namespace.Initialize(seed.Clone())
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	return &MemoryStorage{ns: ns}, nil
}

// Snapshot returns a defensive copy of the namespace.
func (s *MemoryStorage) Snapshot() namespace.Namespace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ns.Clone()
}

// Get returns the value stored under key.
func (s *MemoryStorage) Get(key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.ns[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", namespace.ErrUnknownKey, key)
	}
	return v, nil
}

// Settings decodes the namespace into its typed view.
func (s *MemoryStorage) Settings() (namespace.Settings, error) {
	return namespace.Decode(s.Snapshot())
}
