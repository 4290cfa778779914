// Package radixt implements an ordered, byte-keyed Map and Set backed by
// an edge-compressed radix tree (a compressed trie): edges carry whole
// key fragments instead of single bytes, so a chain of nodes each
// holding one child collapses into a single edge. Keys are compared as
// raw bytes; iteration, prefix queries, and range queries all follow
// that same byte order.
package radixt

import (
	"github.com/hephex/radixt/internal/rxnode"
)

// Map is an ordered, byte-keyed associative container. The zero value
// is an empty, ready-to-use Map.
//
// Map is not safe for concurrent use: it may be read by any number of
// goroutines at once, but a write (Insert, Remove, Drain, or any mutable
// iterator) must be exclusive of all other reads and writes on the same
// Map.
type Map[T any] struct {
	root  rxnode.Node[T]
	count int
}

// New returns an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{}
}

// Pair is one key/value association, used by NewMapFromPairs.
type Pair[T any] struct {
	Key   []byte
	Value T
}

// NewMapFromPairs builds a Map from a sequence of pairs. Later pairs
// overwrite earlier ones with the same key.
func NewMapFromPairs[T any](pairs ...Pair[T]) *Map[T] {
	m := New[T]()
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// Len reports the number of keys stored in m.
func (m *Map[T]) Len() int { return m.count }

// IsEmpty reports whether m holds no keys.
func (m *Map[T]) IsEmpty() bool { return m.count == 0 }

// Insert stores value under key, returning the value previously stored
// there, if any. An empty key is valid and addresses the root of the
// tree.
func (m *Map[T]) Insert(key []byte, value T) (T, bool) {
	prev, replaced := m.root.Insert(key, value)
	if !replaced {
		m.count++
	}
	return prev, replaced
}

// Remove deletes key from m, returning the value that was stored there,
// if any.
func (m *Map[T]) Remove(key []byte) (T, bool) {
	prev, removed := m.root.Remove(key)
	if removed {
		m.count--
	}
	return prev, removed
}

// Get looks up key, reporting whether it was found.
func (m *Map[T]) Get(key []byte) (T, bool) { return m.root.Get(key) }

// GetPtr looks up key and returns a pointer to its value slot, or nil if
// key is absent. The pointer is valid until the tree is next
// structurally mutated.
func (m *Map[T]) GetPtr(key []byte) *T { return m.root.GetPtr(key) }

// ContainsKey reports whether key is present in m.
func (m *Map[T]) ContainsKey(key []byte) bool {
	_, ok := m.root.Get(key)
	return ok
}

// Iter returns an ascending-order iterator over every key/value pair.
func (m *Map[T]) Iter() *Iter[T] {
	return &Iter[T]{cursor: rxnode.NewCursor(&m.root)}
}

// IterMut is like Iter but lets the caller mutate values in place.
func (m *Map[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{cursor: rxnode.NewCursor(&m.root)}
}

// Keys returns an ascending-order iterator over every key.
func (m *Map[T]) Keys() *KeyIter[T] {
	return &KeyIter[T]{cursor: rxnode.NewCursor(&m.root)}
}

// Values returns an ascending-key-order iterator over every value.
func (m *Map[T]) Values() *ValueIter[T] {
	return &ValueIter[T]{cursor: rxnode.NewCursor(&m.root)}
}

// ValuesMut is like Values but lets the caller mutate values in place.
func (m *Map[T]) ValuesMut() *ValueIterMut[T] {
	return &ValueIterMut[T]{cursor: rxnode.NewCursor(&m.root)}
}

// PrefixIter returns an ascending-order iterator over every key/value
// pair whose key extends prefix.
func (m *Map[T]) PrefixIter(prefix []byte) *Iter[T] {
	return &Iter[T]{cursor: rxnode.NewPrefixCursor(&m.root, prefix)}
}

// PrefixIterMut is like PrefixIter but lets the caller mutate values in
// place.
func (m *Map[T]) PrefixIterMut(prefix []byte) *IterMut[T] {
	return &IterMut[T]{cursor: rxnode.NewPrefixCursor(&m.root, prefix)}
}

// PrefixKeys returns an ascending-order iterator over every key that
// extends prefix.
func (m *Map[T]) PrefixKeys(prefix []byte) *KeyIter[T] {
	return &KeyIter[T]{cursor: rxnode.NewPrefixCursor(&m.root, prefix)}
}

// PrefixValues returns an ascending-key-order iterator over the values
// of every key that extends prefix.
func (m *Map[T]) PrefixValues(prefix []byte) *ValueIter[T] {
	return &ValueIter[T]{cursor: rxnode.NewPrefixCursor(&m.root, prefix)}
}

// PrefixValuesMut is like PrefixValues but lets the caller mutate values
// in place.
func (m *Map[T]) PrefixValuesMut(prefix []byte) *ValueIterMut[T] {
	return &ValueIterMut[T]{cursor: rxnode.NewPrefixCursor(&m.root, prefix)}
}

// Range returns an ascending-order iterator over every key/value pair
// with a key between lo and hi.
func (m *Map[T]) Range(lo, hi Bound) *Range[T] {
	return newRange(rxnode.NewCursor(&m.root), lo, hi)
}

// RangeMut is like Range but lets the caller mutate values in place.
func (m *Map[T]) RangeMut(lo, hi Bound) *RangeMut[T] {
	return newRangeMut(rxnode.NewCursor(&m.root), lo, hi)
}

// Drain returns an iterator that empties m as it yields each key/value
// pair in ascending order. m is already empty by the time Drain
// returns; the iterator is simply the queue of pairs still to be
// retrieved.
func (m *Map[T]) Drain() *Drain[T] {
	d := &Drain[T]{inner: rxnode.NewDrain(&m.root)}
	m.count = 0
	return d
}

// CloneFunc copies a single value, used by Map.Clone. A nil CloneFunc
// means values are copied by plain assignment.
type CloneFunc[T any] func(T) T

// Clone returns an independent copy of m. If cp is non-nil, it is used
// to copy each value; otherwise values are copied by assignment, which
// is only a deep copy if T itself holds no reference types.
func (m *Map[T]) Clone(cp CloneFunc[T]) *Map[T] {
	out := New[T]()
	it := m.Iter()
	for it.Next() {
		v := it.Value()
		if cp != nil {
			v = cp(v)
		}
		out.Insert(it.Key(), v)
	}
	return out
}

// Stats summarizes the shape of a Map's underlying tree.
type Stats struct {
	// Nodes is the total number of tree nodes, including the root.
	Nodes int
	// Leaves is the number of nodes with no children.
	Leaves int
	// Values is the number of nodes carrying a value; equal to Len().
	Values int
	// RootFanout is the number of distinct first bytes among the root's
	// immediate children.
	RootFanout int
}

// Stats walks m's tree and reports its shape. It is O(n) in the number
// of nodes, not just the number of keys.
func (m *Map[T]) Stats() Stats {
	var s Stats

	var fanout bitfield256
	for i := range m.root.Children() {
		fanout.set(m.root.Children()[i].Key()[0])
	}
	s.RootFanout = fanout.totalBitCount()

	walkStats(&m.root, &s)
	return s
}

func walkStats[T any](n *rxnode.Node[T], s *Stats) {
	s.Nodes++
	if n.HasValue() {
		s.Values++
	}
	children := n.Children()
	if len(children) == 0 {
		s.Leaves++
	}
	for i := range children {
		walkStats(&children[i], s)
	}
}
