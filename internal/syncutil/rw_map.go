// Package syncutil provides concurrency helpers.
package syncutil

import (
	"iter"
	"maps"
	"sync"
)

// RWMap is a thread-safe map protected by a [sync.RWMutex].
type RWMap[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

func (m *RWMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *RWMap[K, V]) Set(key K, val V) *RWMap[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[K]V)
	}
	m.data[key] = val
	return m
}

// Update atomically applies fn to the current entry under the write lock.
// fn receives the current value (and whether it exists) and returns the new
// value and whether to store it. A concurrent Get observes the entry either
// before or after the whole update, never in between.
func (m *RWMap[K, V]) Update(key K, fn func(old V, ok bool) (V, bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.data[key]
	val, store := fn(old, ok)
	if !store {
		return
	}
	if m.data == nil {
		m.data = make(map[K]V)
	}
	m.data[key] = val
}

// Has checks whether a given key is in the map.
func (m *RWMap[K, V]) Has(key K) bool {
	if m == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

func (m *RWMap[K, V]) Len() int {
	if m == nil {
		return 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// All iterates over a snapshot of the map taken at the start of iteration.
func (m *RWMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}

		m.mu.RLock()
		data := maps.Clone(m.data)
		m.mu.RUnlock()

		for k, v := range data {
			if !yield(k, v) {
				return
			}
		}
	}
}
