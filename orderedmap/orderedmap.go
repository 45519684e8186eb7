// Package orderedmap provides a map that remembers key insertion order.
package orderedmap

import "iter"

type OrderedMap[K comparable, V any] struct {
	underlying map[K]V
	order      []K
}

func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		underlying: make(map[K]V),
		order:      make([]K, 0),
	}
}

// Set stores value under key. A key keeps the position of its first Set.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := m.underlying[key]; !ok {
		m.order = append(m.order, key)
	}
	m.underlying[key] = value
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	value, ok := m.underlying[key]
	return value, ok
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.underlying[key]
	return ok
}

func (m *OrderedMap[K, V]) Keys() []K {
	return m.order
}

func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, len(m.order))
	for i, k := range m.order {
		values[i] = m.underlying[k]
	}
	return values
}

// All iterates key/value pairs in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.underlying[k]) {
				return
			}
		}
	}
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.order)
}
