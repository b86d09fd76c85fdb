// internal/infrastructure/storage/jsonstore/collection.go
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Identifiable is implemented by records stored in a collection.
type Identifiable interface {
	GetID() int
}

// TypedCollection holds one JSON array file. The mutex makes every
// read-modify-write cycle atomic with respect to other users of the same
// collection, and writes go through a temp file plus rename so a crashed
// write never leaves a truncated collection behind.
type TypedCollection[T Identifiable] struct {
	path string
	log  *logrus.Entry

	mu     sync.Mutex
	loaded bool
	items  []T
}

// All returns a copy of every record in insertion order.
func (c *TypedCollection[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Get returns the record with the given id.
func (c *TypedCollection[T]) Get(id int) (T, bool, error) {
	return c.Find(func(item T) bool { return item.GetID() == id })
}

// Find returns the first record matching fn.
func (c *TypedCollection[T]) Find(fn func(T) bool) (T, bool, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return zero, false, err
	}
	for _, item := range c.items {
		if fn(item) {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Where returns every record matching fn, in insertion order.
func (c *TypedCollection[T]) Where(fn func(T) bool) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	matched := make([]T, 0)
	for _, item := range c.items {
		if fn(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Update runs fn against a copy of the collection and persists the slice fn
// returns. The in-memory state only advances after a successful write, so a
// failed write is reported to the caller instead of masquerading as success.
func (c *TypedCollection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return err
	}

	next, err := fn(append([]T(nil), c.items...))
	if err != nil {
		return err
	}

	if err := c.save(next); err != nil {
		return err
	}

	c.items = next
	return nil
}

// NextID assigns ids the way the collections always have: one past the
// largest existing id, starting at 1 for an empty collection.
func NextID[T Identifiable](items []T) int {
	maxID := 0
	for _, item := range items {
		if item.GetID() > maxID {
			maxID = item.GetID()
		}
	}
	return maxID + 1
}

func (c *TypedCollection[T]) ensureLoaded() error {
	if c.loaded {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.items = nil
			c.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.path, err)
	}

	c.items = items
	c.loaded = true
	return nil
}

func (c *TypedCollection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*")
	if err != nil {
		c.log.WithError(err).Error("Failed to create temp file for collection write")
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		c.log.WithError(err).Error("Failed to write collection")
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		c.log.WithError(err).Error("Failed to replace collection file")
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}

	c.log.WithField("items", len(items)).Debug("Collection written")
	return nil
}
