// internal/infrastructure/storage/jsonstore/store.go
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store manages a directory of JSON collection files. Each logical
// collection lives in one file holding a single JSON array; collections are
// bound lazily and shared, so every caller of the same collection sees the
// same lock and in-memory state.
type Store struct {
	dir string
	log *logrus.Logger

	mu          sync.Mutex
	collections map[string]interface{}
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string, log *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return &Store{
		dir:         dir,
		log:         log,
		collections: make(map[string]interface{}),
	}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// Collection binds name to a typed collection stored in <name>.json. The
// first call for a name creates the binding; later calls must use the same
// element type.
func Collection[T Identifiable](s *Store, name string) *TypedCollection[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.collections[name]; ok {
		coll, ok := existing.(*TypedCollection[T])
		if !ok {
			panic(fmt.Sprintf("jsonstore: collection %q already bound to a different type", name))
		}
		return coll
	}

	coll := &TypedCollection[T]{
		path: filepath.Join(s.dir, name+".json"),
		log:  s.log.WithField("collection", name),
	}
	s.collections[name] = coll
	return coll
}
