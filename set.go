package radixt

import (
	"bytes"

	set3 "github.com/TomTonic/Set3"
)

// Set is an ordered set of byte-string keys, built on top of Map with a
// unit payload. The zero value is an empty, ready-to-use Set.
type Set struct {
	m Map[struct{}]
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// NewSetFromKeys builds a Set from a sequence of keys.
func NewSetFromKeys(keys ...[]byte) *Set {
	s := NewSet()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Len reports the number of keys in s.
func (s *Set) Len() int { return s.m.Len() }

// IsEmpty reports whether s holds no keys.
func (s *Set) IsEmpty() bool { return s.m.IsEmpty() }

// Insert adds key to s, reporting whether it was not already present.
func (s *Set) Insert(key []byte) bool {
	_, replaced := s.m.Insert(key, struct{}{})
	return !replaced
}

// Remove deletes key from s, reporting whether it was present.
func (s *Set) Remove(key []byte) bool {
	_, removed := s.m.Remove(key)
	return removed
}

// Contains reports whether key is present in s.
func (s *Set) Contains(key []byte) bool { return s.m.ContainsKey(key) }

// Iter returns an ascending-order iterator over every key.
func (s *Set) Iter() *KeyIter[struct{}] { return s.m.Keys() }

// PrefixIter returns an ascending-order iterator over every key that
// extends prefix.
func (s *Set) PrefixIter(prefix []byte) *KeyIter[struct{}] { return s.m.PrefixKeys(prefix) }

// Range returns an ascending-order iterator over every key between lo
// and hi.
func (s *Set) Range(lo, hi Bound) *Range[struct{}] { return s.m.Range(lo, hi) }

// SetIter yields independently owned keys computed lazily from a set
// algebra operation (Intersection, Union, Difference).
type SetIter struct {
	next func() ([]byte, bool)
	cur  []byte
}

// Next advances the iterator, reporting whether a key was found.
func (it *SetIter) Next() bool {
	k, ok := it.next()
	if !ok {
		return false
	}
	it.cur = k
	return true
}

// Key returns the current key.
func (it *SetIter) Key() []byte { return it.cur }

// Collect drains the iterator into a new, independent Set.
func (it *SetIter) Collect() *Set {
	out := NewSet()
	for it.Next() {
		out.Insert(it.Key())
	}
	return out
}

type peekKeyIter struct {
	it  *KeyIter[struct{}]
	key []byte
	has bool
}

func newPeekKeyIter(it *KeyIter[struct{}]) *peekKeyIter {
	p := &peekKeyIter{it: it}
	p.advance()
	return p
}

func (p *peekKeyIter) advance() {
	if p.it.Next() {
		p.key = p.it.Key()
		p.has = true
	} else {
		p.key = nil
		p.has = false
	}
}

// Intersection returns a lazily-computed iterator over every key present
// in both s and other, in ascending order.
func (s *Set) Intersection(other *Set) *SetIter {
	a := newPeekKeyIter(s.Iter())
	b := newPeekKeyIter(other.Iter())
	return &SetIter{next: func() ([]byte, bool) {
		for a.has && b.has {
			switch c := bytes.Compare(a.key, b.key); {
			case c < 0:
				a.advance()
			case c > 0:
				b.advance()
			default:
				k := a.key
				a.advance()
				b.advance()
				return k, true
			}
		}
		return nil, false
	}}
}

// Union returns a lazily-computed iterator over every key present in
// either s or other, in ascending order, with duplicates merged.
func (s *Set) Union(other *Set) *SetIter {
	a := newPeekKeyIter(s.Iter())
	b := newPeekKeyIter(other.Iter())
	return &SetIter{next: func() ([]byte, bool) {
		switch {
		case a.has && b.has:
			switch c := bytes.Compare(a.key, b.key); {
			case c < 0:
				k := a.key
				a.advance()
				return k, true
			case c > 0:
				k := b.key
				b.advance()
				return k, true
			default:
				k := a.key
				a.advance()
				b.advance()
				return k, true
			}
		case a.has:
			k := a.key
			a.advance()
			return k, true
		case b.has:
			k := b.key
			b.advance()
			return k, true
		default:
			return nil, false
		}
	}}
}

// Difference returns a lazily-computed iterator over every key present
// in s but not in other, in ascending order.
func (s *Set) Difference(other *Set) *SetIter {
	it := s.Iter()
	return &SetIter{next: func() ([]byte, bool) {
		for it.Next() {
			k := it.Key()
			if !other.Contains(k) {
				return k, true
			}
		}
		return nil, false
	}}
}

// ToSet3 copies s into a github.com/TomTonic/Set3 hash set of strings,
// useful for interop with code that already standardizes on Set3 for
// unordered membership tests.
func (s *Set) ToSet3() *set3.Set3[string] {
	out := set3.Empty[string]()
	it := s.Iter()
	for it.Next() {
		out.Add(string(it.Key()))
	}
	return out
}
