package rxnode

// Cursor is the depth-first preorder walk that every ordered view of the
// tree (full iteration, prefix iteration, range iteration, both mutable
// and immutable) is built from. It holds a stack of (depth, node) pairs
// and a single reusable prefix buffer; the key reported by Key is valid
// only until the next call to Next, mirroring the borrow discipline of
// a single shared scratch buffer.
type Cursor[T any] struct {
	stack  []frame[T]
	prefix []byte
	cur    *Node[T]
}

type frame[T any] struct {
	depth int
	node  *Node[T]
}

// NewCursor starts a full ascending-order walk of the subtree rooted at
// root.
func NewCursor[T any](root *Node[T]) *Cursor[T] {
	return newCursorAt(root, nil)
}

// newCursorAt starts a walk rooted at node, with basePrefix already
// accounted for as the path above node (used by prefix iteration, where
// node sits partway into the tree).
func newCursorAt[T any](node *Node[T], basePrefix []byte) *Cursor[T] {
	c := &Cursor[T]{prefix: cloneBytes(basePrefix)}
	if node != nil {
		c.stack = []frame[T]{{depth: len(c.prefix), node: node}}
	}
	return c
}

// Next advances to the next key/value pair in ascending byte order,
// reporting whether one was found. Children are pushed onto the stack
// in reverse so the smallest surviving edge is always popped first,
// which is what makes the walk ordered.
func (c *Cursor[T]) Next() bool {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		c.prefix = append(c.prefix[:top.depth], top.node.key...)
		depth := len(c.prefix)

		children := top.node.children
		for i := len(children) - 1; i >= 0; i-- {
			c.stack = append(c.stack, frame[T]{depth: depth, node: &children[i]})
		}

		if top.node.hasValue {
			c.cur = top.node
			return true
		}
	}
	c.cur = nil
	return false
}

// Key returns the current key. The returned slice is a shared scratch
// buffer: it is only valid until the next call to Next.
func (c *Cursor[T]) Key() []byte { return c.prefix }

// Value returns the current value.
func (c *Cursor[T]) Value() T { return c.cur.value }

// ValuePtr returns a pointer to the current value slot, for mutable
// traversal. It is valid until the tree is next structurally mutated.
func (c *Cursor[T]) ValuePtr() *T { return &c.cur.value }

// NewPrefixCursor starts a walk over exactly the keys of root's subtree
// that extend prefix, or an empty cursor if no key does.
func NewPrefixCursor[T any](root *Node[T], prefix []byte) *Cursor[T] {
	node, consumed, ok := root.FindPrefix(prefix)
	if !ok {
		return &Cursor[T]{}
	}
	return newCursorAt(node, prefix[:consumed])
}

// Drain walks the tree destructively, handing out ownership of each
// key/value pair exactly once and leaving the tree empty when
// exhausted. Any pairs never retrieved before the Drain is abandoned are
// simply left unreferenced and collected by the garbage collector along
// with the rest of the detached subtree.
type Drain[T any] struct {
	stack  []drainFrame[T]
	prefix []byte
	curKey []byte
	curVal T
}

type drainFrame[T any] struct {
	depth int
	node  Node[T]
}

// NewDrain detaches root's entire contents into a Drain and resets root
// to the empty, valueless sentinel.
func NewDrain[T any](root *Node[T]) *Drain[T] {
	taken := *root
	*root = Node[T]{}
	return &Drain[T]{stack: []drainFrame[T]{{depth: 0, node: taken}}}
}

// Next advances to the next key/value pair, reporting whether one was
// found.
func (d *Drain[T]) Next() bool {
	for len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]

		d.prefix = append(d.prefix[:top.depth], top.node.key...)
		depth := len(d.prefix)

		children := top.node.takeChildren()
		for i := len(children) - 1; i >= 0; i-- {
			d.stack = append(d.stack, drainFrame[T]{depth: depth, node: children[i]})
		}

		if v, ok := top.node.takeValue(); ok {
			d.curKey = append([]byte(nil), d.prefix...)
			d.curVal = v
			return true
		}
	}
	var zero T
	d.curVal = zero
	return false
}

// Key returns the current, independently owned key.
func (d *Drain[T]) Key() []byte { return d.curKey }

// Value returns the current, independently owned value.
func (d *Drain[T]) Value() T { return d.curVal }
