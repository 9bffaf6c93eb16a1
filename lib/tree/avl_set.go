package tree

import (
	"iter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xavl/lib/infra"
)

type avlSet[K any] struct {
	root              *avlNode[K]
	count             int64
	less              infra.OrderedKeyLess[K]
	tracer            *zap.Logger
	isDesc            bool
	isEraseBorrowSucc bool
}

func (set *avlSet[K]) keyCompare(k1, k2 K) int64 {
	res := infra.OrderedKeyCompare(set.less, k1, k2)
	if set.isDesc {
		return -res
	}
	return res
}

func (set *avlSet[K]) trace(msg string, fields ...zap.Field) {
	if ce := set.tracer.Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (set *avlSet[K]) Less(i, j K) bool {
	return set.keyCompare(i, j) < 0
}

func (set *avlSet[K]) Len() int64 {
	return set.count
}

func (set *avlSet[K]) IsEmpty() bool {
	return set.count == 0
}

func (set *avlSet[K]) Height() int {
	return set.root.Height()
}

func (set *avlSet[K]) Root() AVLNode[K] {
	if set.root == nil {
		return nil
	}
	return set.root
}

// References:
// https://en.wikipedia.org/wiki/AVL_tree#Rebalancing
// Every node holds |height(left) - height(right)| <= 1, an absent
// child counts as height 0. So the height of a tree with n nodes is
// bounded by 1.44 * log2(n+2) - 0.328.

/*
		 |                         |
		 B                         A
		/ \    rightRotate(B)     / \
	   A   R   ============>     L   B
	  / \                           / \
	 L   C                         C   R
*/
func (set *avlSet[K]) rightRotate(b *avlNode[K]) *avlNode[K] {
	if b == nil || b.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avl] right rotate node b is nil or b.left is nil")
	}

	a := b.left
	c := a.right
	a.right, b.left = b, c
	a.parent, b.parent = b.parent, a
	if c != nil {
		c.parent = b
	}
	b.height = b.heightSubtree()
	a.height = a.heightSubtree()
	set.trace("[avl] right rotate",
		zap.Any("pivot", b.key),
		zap.Any("promoted", a.key),
	)
	return a
}

/*
		 |                         |
		 A                         B
		/ \    leftRotate(A)      / \
	   L   B   ============>     A   R
		  / \                   / \
		 C   R                 L   C
*/
func (set *avlSet[K]) leftRotate(a *avlNode[K]) *avlNode[K] {
	if a == nil || a.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avl] left rotate node a is nil or a.right is nil")
	}

	b := a.right
	c := b.left
	b.left, a.right = a, c
	b.parent, a.parent = a.parent, b
	if c != nil {
		c.parent = a
	}
	a.height = a.heightSubtree()
	b.height = b.heightSubtree()
	set.trace("[avl] left rotate",
		zap.Any("pivot", a.key),
		zap.Any("promoted", b.key),
	)
	return b
}

/*
rb1: Right-heavy (balance < -1) and the right child is not left-heavy,
single left rotation.

rb2: Right-heavy and the right child is left-heavy (RL case),
right rotate the right child then left rotate x.

rb3: Left-heavy (balance > 1) and the left child is not right-heavy,
single right rotation.

rb4: Left-heavy and the left child is right-heavy (LR case),
left rotate the left child then right rotate x.
*/
func (set *avlSet[K]) rebalance(x *avlNode[K]) *avlNode[K] {
	if bal := x.balance(); bal < -1 {
		if /* rb1 */ x.right.balance() <= 0 {
			return set.leftRotate(x)
		}
		/* rb2 */
		x.right = set.rightRotate(x.right)
		return set.leftRotate(x)
	} else if bal > 1 {
		if /* rb3 */ x.left.balance() >= 0 {
			return set.rightRotate(x)
		}
		/* rb4 */
		x.left = set.leftRotate(x.left)
		return set.rightRotate(x)
	}
	return x
}

// Returns the new root of the subtree x and whether a node was added.
func (set *avlSet[K]) insert(x *avlNode[K], key K) (*avlNode[K], bool) {
	if x == nil {
		z := newAVLNode[K](key)
		set.count++
		return z, true
	}

	var inserted bool
	if res := set.keyCompare(key, x.key); /* equal */ res == 0 {
		return x, false
	} else /* less */ if res < 0 {
		x.left, inserted = set.insert(x.left, key)
		x.left.parent = x
	} else /* greater */ {
		x.right, inserted = set.insert(x.right, key)
		x.right.parent = x
	}

	if !inserted {
		return x, false
	}
	x.height = x.heightSubtree()
	return set.rebalance(x), true
}

func (set *avlSet[K]) Insert(key K) bool {
	root, inserted := set.insert(set.root, key)
	set.root = root
	return inserted
}

func (set *avlSet[K]) InsertRange(first, last AVLIterator[K]) {
	if first == nil {
		return
	}
	it := first
	if aux, ok := first.(*avlIterator[K]); ok {
		if aux == nil {
			return
		}
		// Walks a copy, the caller's iterator stays in place.
		cp := *aux
		it = &cp
	}
	// Collects first, the range may belong to this set.
	keys := make([]K, 0, 16)
	for ; !it.IsEnd() && (last == nil || !it.Equal(last)); it.Next() {
		keys = append(keys, it.Key())
	}
	for i := range keys {
		set.Insert(keys[i])
	}
}

/*
The node identity is kept while erasing, the key of a node is never
reassigned. Swap the positions (links and height) of the node X to be
erased with its pred P (or succ) instead. A pred has no right child
and a succ has no left child.

Adjacent, P is the left child of X:

	    |                  |
	    X                  P
	   / \   swap(X, P)   / \
	  P   R  =========>  X   R
	 /                  /
	L                  L

Non-adjacent, P is the right-most node of X's left subtree:

	  |                    |
	  X                    P
	 / \                  / \
	A  ..   swap(X, P)   A  ..
	 \      =========>    \
	  P                    X
	 /                    /
	L                    L

Returns b, which occupies the former position of a.
*/
func (set *avlSet[K]) swapNodes(a, b *avlNode[K]) *avlNode[K] {
	if a == nil || b == nil || a == b {
		// impossible run to here
		panic( /* debug assertion */ "[avl] swap nil or identical nodes")
	}

	ap, adjacent := a.parent, true
	if a.left == b {
		bl, br := b.left, b.right
		b.left, b.right = a, a.right
		a.left, a.right = bl, br
		b.parent, a.parent = ap, b
	} else if a.right == b {
		bl, br := b.left, b.right
		b.left, b.right = a.left, a
		a.left, a.right = bl, br
		b.parent, a.parent = ap, b
	} else {
		adjacent = false
		bp := b.parent
		if bp.left == b {
			bp.left = a
		} else {
			bp.right = a
		}
		a.left, b.left = b.left, a.left
		a.right, b.right = b.right, a.right
		a.parent, b.parent = bp, ap
	}

	if ap != nil {
		if ap.left == a {
			ap.left = b
		} else if ap.right == a {
			ap.right = b
		}
	}
	a.fixLink()
	b.fixLink()
	a.height, b.height = b.height, a.height

	set.trace("[avl] swap nodes",
		zap.Any("erasing", a.key),
		zap.Any("borrowed", b.key),
		zap.Bool("adjacent", adjacent),
	)
	return b
}

// Returns the new root of the subtree x and whether a node was removed.
func (set *avlSet[K]) erase(x *avlNode[K], key K) (*avlNode[K], bool) {
	if x == nil {
		return nil, false
	}

	var erased bool
	if res := set.keyCompare(key, x.key); /* less */ res < 0 {
		x.left, erased = set.erase(x.left, key)
	} else /* greater */ if res > 0 {
		x.right, erased = set.erase(x.right, key)
	} else /* equal */ {
		switch {
		case x.right != nil && (x.left == nil || set.isEraseBorrowSucc):
			x = set.swapNodes(x, x.right.minimum())
			x.right, erased = set.erase(x.right, key)
		case x.left != nil:
			x = set.swapNodes(x, x.left.maximum())
			x.left, erased = set.erase(x.left, key)
		default:
			set.trace("[avl] unlink leaf",
				zap.Any("key", x.key),
				zap.Stringer("dir", x.Direction()),
			)
			x.unlink()
			set.count--
			return nil, true
		}
	}

	if !erased {
		return x, false
	}
	x.height = x.heightSubtree()
	return set.rebalance(x), true
}

func (set *avlSet[K]) Erase(key K) bool {
	root, erased := set.erase(set.root, key)
	set.root = root
	return erased
}

func (set *avlSet[K]) Contains(key K) bool {
	return !set.Find(key).IsEnd()
}

func (set *avlSet[K]) Find(key K) AVLIterator[K] {
	it := set.lowerBound(key)
	if it.node == nil || set.keyCompare(key, it.node.key) != 0 {
		return set.End()
	}
	return it
}

func (set *avlSet[K]) LowerBound(key K) AVLIterator[K] {
	return set.lowerBound(key)
}

func (set *avlSet[K]) lowerBound(key K) *avlIterator[K] {
	var candidate *avlNode[K]
	for aux := set.root; aux != nil; {
		res := set.keyCompare(aux.key, key)
		if /* less */ res < 0 {
			aux = aux.right
		} else if /* greater */ res > 0 {
			candidate = aux
			aux = aux.left
		} else /* equal */ {
			return newAVLIterator[K](aux, set.root)
		}
	}
	return newAVLIterator[K](candidate, set.root)
}

func (set *avlSet[K]) Begin() AVLIterator[K] {
	return newAVLIterator[K](set.root.minimum(), set.root)
}

func (set *avlSet[K]) End() AVLIterator[K] {
	return newAVLIterator[K](nil, set.root)
}

func (set *avlSet[K]) Min() (key K, ok bool) {
	if aux := set.root.minimum(); aux != nil {
		return aux.key, true
	}
	return key, false
}

func (set *avlSet[K]) Max() (key K, ok bool) {
	if aux := set.root.maximum(); aux != nil {
		return aux.key, true
	}
	return key, false
}

// Inorder traversal to implement the DFS.
func (set *avlSet[K]) Foreach(action func(idx int64, key K) bool) {
	aux := set.root
	if aux == nil {
		return
	}

	stack := make([]*avlNode[K], 0, aux.height)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

func (set *avlSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for aux := set.root.minimum(); aux != nil; aux = aux.succ() {
			if !yield(aux.key) {
				return
			}
		}
	}
}

func (set *avlSet[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for aux := set.root.maximum(); aux != nil; aux = aux.pred() {
			if !yield(aux.key) {
				return
			}
		}
	}
}

func (set *avlSet[K]) newEmpty() *avlSet[K] {
	return &avlSet[K]{
		less:              set.less,
		tracer:            set.tracer,
		isDesc:            set.isDesc,
		isEraseBorrowSucc: set.isEraseBorrowSucc,
	}
}

// Clone re-inserts every key in order into a new set with the same
// options, no node is shared with the origin.
func (set *avlSet[K]) Clone() AVLSet[K] {
	dst := set.newEmpty()
	set.Foreach(func(idx int64, key K) bool {
		dst.Insert(key)
		return true
	})
	return dst
}

func (set *avlSet[K]) CopyFrom(src AVLSet[K]) {
	if s, ok := src.(*avlSet[K]); ok && s == set {
		return
	}
	set.Release()
	if src == nil {
		return
	}
	for key := range src.All() {
		set.Insert(key)
	}
}

// Release unlinks every node in post-order, the children of a node are
// detached before itself.
func (set *avlSet[K]) Release() {
	aux := set.root
	set.root = nil
	set.count = 0
	if aux == nil {
		return
	}

	stack := make([]*avlNode[K], 0, aux.height)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	released := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if l := aux.left; l != nil {
			aux.left = nil
			stack = append(stack, l)
			continue
		}
		if r := aux.right; r != nil {
			aux.right = nil
			stack = append(stack, r)
			continue
		}
		stack = stack[:size-1]
		aux.unlink()
		released++
	}
	set.trace("[avl] release", zap.Int64("nodes", released))
}

type AVLSetOpt[K any] func(*avlSet[K])

// WithAVLSetDesc reverses the ordering, the iteration runs from the
// greatest key to the least one.
func WithAVLSetDesc[K any]() AVLSetOpt[K] {
	return func(set *avlSet[K]) {
		set.isDesc = true
	}
}

// WithAVLSetEraseBorrowSucc borrows the succ node first when the node
// to be erased has two children. The pred node is borrowed by default.
func WithAVLSetEraseBorrowSucc[K any]() AVLSetOpt[K] {
	return func(set *avlSet[K]) {
		set.isEraseBorrowSucc = true
	}
}

// WithAVLSetTracer logs rotations, node swaps and releases at debug level.
func WithAVLSetTracer[K any](logger *zap.Logger) AVLSetOpt[K] {
	return func(set *avlSet[K]) {
		if logger != nil {
			set.tracer = logger
		}
	}
}

func NewAVLSetFunc[K any](less infra.OrderedKeyLess[K], opts ...AVLSetOpt[K]) AVLSet[K] {
	if less == nil {
		panic( /* debug assertion */ "[avl] nil less function")
	}
	set := &avlSet[K]{
		count:             0,
		less:              less,
		tracer:            zap.NewNop(),
		isDesc:            false,
		isEraseBorrowSucc: false,
	}

	for _, o := range opts {
		o(set)
	}
	return set
}

func NewAVLSet[K infra.OrderedKey](opts ...AVLSetOpt[K]) AVLSet[K] {
	return NewAVLSetFunc[K](infra.OrderedLess[K], opts...)
}

// NewAVLSetOf builds a set from a list of keys, duplicates are dropped.
func NewAVLSetOf[K infra.OrderedKey](keys ...K) AVLSet[K] {
	set := NewAVLSet[K]()
	for i := range keys {
		set.Insert(keys[i])
	}
	return set
}

// NewAVLSetFromSeq builds a set by inserting every key of seq.
func NewAVLSetFromSeq[K any](less infra.OrderedKeyLess[K], seq iter.Seq[K], opts ...AVLSetOpt[K]) AVLSet[K] {
	set := NewAVLSetFunc[K](less, opts...)
	if seq == nil {
		return set
	}
	for key := range seq {
		set.Insert(key)
	}
	return set
}
