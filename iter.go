package radixt

import (
	"bytes"

	"github.com/hephex/radixt/internal/rxnode"
)

// Iter walks a Map in ascending key order, yielding both key and value.
// The zero value is not usable; obtain one from Map.Iter or
// Map.PrefixIter.
//
// The key returned by Key is a shared scratch buffer valid only until
// the next call to Next; callers that need to retain it must copy it.
type Iter[T any] struct {
	cursor *rxnode.Cursor[T]
}

// Next advances the iterator, reporting whether a pair was found.
func (it *Iter[T]) Next() bool { return it.cursor.Next() }

// Key returns the current key.
func (it *Iter[T]) Key() []byte { return it.cursor.Key() }

// Value returns the current value.
func (it *Iter[T]) Value() T { return it.cursor.Value() }

// IterMut is like Iter but exposes a pointer into the stored value slot
// so callers can mutate it in place. The tree must not be structurally
// mutated (Insert or Remove through the owning Map) while an IterMut is
// in use.
type IterMut[T any] struct {
	cursor *rxnode.Cursor[T]
}

// Next advances the iterator, reporting whether a pair was found.
func (it *IterMut[T]) Next() bool { return it.cursor.Next() }

// Key returns the current key.
func (it *IterMut[T]) Key() []byte { return it.cursor.Key() }

// Value returns a pointer to the current value slot.
func (it *IterMut[T]) Value() *T { return it.cursor.ValuePtr() }

// KeyIter yields independently owned copies of each key in ascending
// order.
type KeyIter[T any] struct {
	cursor *rxnode.Cursor[T]
}

// Next advances the iterator, reporting whether a key was found.
func (it *KeyIter[T]) Next() bool { return it.cursor.Next() }

// Key returns the current key, copied out of the cursor's scratch
// buffer so it remains valid past the next Next call.
func (it *KeyIter[T]) Key() []byte {
	k := it.cursor.Key()
	out := make([]byte, len(k))
	copy(out, k)
	return out
}

// ValueIter yields values only, in ascending key order.
type ValueIter[T any] struct {
	cursor *rxnode.Cursor[T]
}

// Next advances the iterator, reporting whether a value was found.
func (it *ValueIter[T]) Next() bool { return it.cursor.Next() }

// Value returns the current value.
func (it *ValueIter[T]) Value() T { return it.cursor.Value() }

// ValueIterMut is like ValueIter but exposes a pointer into the stored
// value slot.
type ValueIterMut[T any] struct {
	cursor *rxnode.Cursor[T]
}

// Next advances the iterator, reporting whether a value was found.
func (it *ValueIterMut[T]) Next() bool { return it.cursor.Next() }

// Value returns a pointer to the current value slot.
func (it *ValueIterMut[T]) Value() *T { return it.cursor.ValuePtr() }

// BoundKind classifies one endpoint of a Range query.
type BoundKind uint8

const (
	// Unbounded means the range has no constraint on this side.
	Unbounded BoundKind = iota
	// Included means the bound's Key itself is part of the range.
	Included
	// Excluded means the bound's Key is the edge of the range but not
	// part of it.
	Excluded
)

// Bound is one endpoint, lower or upper, of a Range query.
type Bound struct {
	Kind BoundKind
	Key  []byte
}

// BoundUnbounded returns a Bound with no constraint.
func BoundUnbounded() Bound { return Bound{Kind: Unbounded} }

// BoundIncluded returns a Bound anchored at key, key itself included.
func BoundIncluded(key []byte) Bound { return Bound{Kind: Included, Key: key} }

// BoundExcluded returns a Bound anchored at key, key itself excluded.
func BoundExcluded(key []byte) Bound { return Bound{Kind: Excluded, Key: key} }

func inRangeLeft(b Bound, key []byte) bool {
	switch b.Kind {
	case Included:
		return bytes.Compare(b.Key, key) <= 0
	case Excluded:
		return bytes.Compare(b.Key, key) < 0
	default:
		return true
	}
}

func inRangeRight(b Bound, key []byte) bool {
	switch b.Kind {
	case Included:
		return bytes.Compare(b.Key, key) >= 0
	case Excluded:
		return bytes.Compare(b.Key, key) > 0
	default:
		return true
	}
}

// Range walks a Map's keys ascending, restricted to those between a
// lower and upper Bound.
type Range[T any] struct {
	inner *Iter[T]
	lo    Bound
	hi    Bound
	done  bool
}

func newRange[T any](cursor *rxnode.Cursor[T], lo, hi Bound) *Range[T] {
	return &Range[T]{inner: &Iter[T]{cursor: cursor}, lo: lo, hi: hi}
}

// Next advances the range, reporting whether a pair within bounds was
// found. It stops for good, without scanning the rest of the tree, the
// first time a key exceeds the upper bound.
func (r *Range[T]) Next() bool {
	if r.done {
		return false
	}
	for r.inner.Next() {
		k := r.inner.Key()
		if !inRangeLeft(r.lo, k) {
			continue
		}
		if !inRangeRight(r.hi, k) {
			r.done = true
			return false
		}
		return true
	}
	r.done = true
	return false
}

// Key returns the current key.
func (r *Range[T]) Key() []byte { return r.inner.Key() }

// Value returns the current value.
func (r *Range[T]) Value() T { return r.inner.Value() }

// RangeMut is like Range but exposes a pointer into the stored value
// slot.
type RangeMut[T any] struct {
	inner *IterMut[T]
	lo    Bound
	hi    Bound
	done  bool
}

func newRangeMut[T any](cursor *rxnode.Cursor[T], lo, hi Bound) *RangeMut[T] {
	return &RangeMut[T]{inner: &IterMut[T]{cursor: cursor}, lo: lo, hi: hi}
}

// Next advances the range, reporting whether a pair within bounds was
// found.
func (r *RangeMut[T]) Next() bool {
	if r.done {
		return false
	}
	for r.inner.Next() {
		k := r.inner.Key()
		if !inRangeLeft(r.lo, k) {
			continue
		}
		if !inRangeRight(r.hi, k) {
			r.done = true
			return false
		}
		return true
	}
	r.done = true
	return false
}

// Key returns the current key.
func (r *RangeMut[T]) Key() []byte { return r.inner.Key() }

// Value returns a pointer to the current value slot.
func (r *RangeMut[T]) Value() *T { return r.inner.Value() }

// Drain walks a Map destructively, handing out ownership of each
// key/value pair exactly once and leaving the Map empty when exhausted.
type Drain[T any] struct {
	inner *rxnode.Drain[T]
}

// Next advances the drain, reporting whether a pair was found.
func (d *Drain[T]) Next() bool { return d.inner.Next() }

// Key returns the current, independently owned key.
func (d *Drain[T]) Key() []byte { return d.inner.Key() }

// Value returns the current value.
func (d *Drain[T]) Value() T { return d.inner.Value() }
