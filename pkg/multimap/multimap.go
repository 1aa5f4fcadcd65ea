package multimap

import "iter"

// Pair is a single key/value association.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// MultiMap associates each key with a set of distinct values.
// The zero value is an empty multimap ready for use.
type MultiMap[K, V comparable] struct {
	m map[K]map[V]struct{}
	n int // number of associations
}

// New creates an empty multimap.
func New[K, V comparable]() *MultiMap[K, V] {
	return &MultiMap[K, V]{m: make(map[K]map[V]struct{})}
}

// From creates a multimap holding the given pairs.
// Duplicate pairs are absorbed.
func From[K, V comparable](pairs ...Pair[K, V]) *MultiMap[K, V] {
	mm := New[K, V]()
	for _, p := range pairs {
		mm.Insert(p.Key, p.Value)
	}
	return mm
}

// Collect creates a multimap from a sequence of key/value associations.
func Collect[K, V comparable](seq iter.Seq2[K, V]) *MultiMap[K, V] {
	mm := New[K, V]()
	for k, v := range seq {
		mm.Insert(k, v)
	}
	return mm
}

// Insert adds value to the set of key. Inserting an existing association
// does nothing.
func (mm *MultiMap[K, V]) Insert(key K, value V) {
	if mm.m == nil {
		mm.m = make(map[K]map[V]struct{})
	}
	set, ok := mm.m[key]
	if !ok {
		set = make(map[V]struct{}, 1)
		mm.m[key] = set
	}
	if _, exists := set[value]; exists {
		return
	}
	set[value] = struct{}{}
	mm.n++
}

// Remove deletes value from the set of key. The key itself is dropped once
// its set is empty. Removing a missing association does nothing.
func (mm *MultiMap[K, V]) Remove(key K, value V) {
	set, ok := mm.m[key]
	if !ok {
		return
	}
	if _, exists := set[value]; !exists {
		return
	}
	delete(set, value)
	mm.n--
	if len(set) == 0 {
		delete(mm.m, key)
	}
}

// RemoveKey drops key and every value associated with it.
func (mm *MultiMap[K, V]) RemoveKey(key K) {
	mm.n -= len(mm.m[key])
	delete(mm.m, key)
}

// Get returns the values associated with key. The sequence is empty when
// key is unknown.
func (mm *MultiMap[K, V]) Get(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range mm.m[key] {
			if !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether value is associated with key.
func (mm *MultiMap[K, V]) Contains(key K, value V) bool {
	_, ok := mm.m[key][value]
	return ok
}

// HasKey reports whether key has at least one value.
func (mm *MultiMap[K, V]) HasKey(key K) bool {
	_, ok := mm.m[key]
	return ok
}

// All returns every key/value association, one pair per association.
// Each call starts a fresh traversal.
func (mm *MultiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, set := range mm.m {
			for v := range set {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Values returns the value of every association. A value associated with
// several keys is yielded once per key.
func (mm *MultiMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range mm.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Keys returns every key that has at least one value.
func (mm *MultiMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range mm.m {
			if !yield(k) {
				return
			}
		}
	}
}

// Grouped returns each key together with its values.
func (mm *MultiMap[K, V]) Grouped() iter.Seq2[K, iter.Seq[V]] {
	return func(yield func(K, iter.Seq[V]) bool) {
		for k := range mm.m {
			if !yield(k, mm.Get(k)) {
				return
			}
		}
	}
}

// Len returns the number of associations.
func (mm *MultiMap[K, V]) Len() int { return mm.n }

// KeyCount returns the number of distinct keys.
func (mm *MultiMap[K, V]) KeyCount() int { return len(mm.m) }

// Clone returns a deep copy. The copy shares no sets with mm, so either
// side can be mutated independently.
func (mm *MultiMap[K, V]) Clone() *MultiMap[K, V] {
	c := &MultiMap[K, V]{m: make(map[K]map[V]struct{}, len(mm.m)), n: mm.n}
	for k, set := range mm.m {
		cs := make(map[V]struct{}, len(set))
		for v := range set {
			cs[v] = struct{}{}
		}
		c.m[k] = cs
	}
	return c
}

// Equal reports whether mm and other hold exactly the same associations.
func (mm *MultiMap[K, V]) Equal(other *MultiMap[K, V]) bool {
	if mm.n != other.n || len(mm.m) != len(other.m) {
		return false
	}
	for k, v := range mm.All() {
		if !other.Contains(k, v) {
			return false
		}
	}
	return true
}
