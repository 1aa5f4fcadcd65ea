// Package multimap provides a generic map from keys to sets of distinct values.
//
// # Overview
//
// A [MultiMap] can be viewed either as a map from keys to non-empty value
// sets:
//
//	11 → {22, 33}
//	22 → {44}
//
// or as a flattened collection of key/value associations:
//
//	(11, 22) (11, 33) (22, 44)
//
// Both views are available as lazy iterators: [MultiMap.Grouped] yields one
// entry per key, [MultiMap.All] one entry per association.
//
// # Set Semantics
//
// Each key holds a set, so inserting the same association twice is a no-op.
// Removing the last value of a key removes the key itself; a key is never
// stored with an empty set. Iteration order is unspecified, matching the
// underlying Go maps.
//
// # Usage
//
//	var m multimap.MultiMap[int, int]
//	m.Insert(11, 22)
//	m.Insert(11, 33)
//	m.Remove(11, 33)
//	for v := range m.Get(11) {
//	    fmt.Println(v) // 22
//	}
//
// The zero value is an empty multimap ready for use.
//
// # Concurrency
//
// MultiMap is not safe for concurrent use. Iterators observe the map live;
// mutating a multimap while ranging over one of its iterators has the same
// semantics as mutating a Go map during a range loop.
package multimap
