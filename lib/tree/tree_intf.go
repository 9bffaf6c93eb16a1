package tree

import (
	"iter"
)

//go:generate stringer -type=AVLDirection
type AVLDirection int8

const (
	Left AVLDirection = -1 + iota
	Root
	Right
)

// AVLNode is the read-only view of a tree vertex.
type AVLNode[K any] interface {
	Key() K
	// Height of the subtree rooted at this node, a leaf is 1.
	Height() int
	Left() AVLNode[K]
	Right() AVLNode[K]
	Parent() AVLNode[K]
}

// AVLIterator is a bidirectional cursor over the keys of an AVLSet.
// Any Insert or Erase on the set invalidates every iterator obtained
// before it.
type AVLIterator[K any] interface {
	Key() K
	IsEnd() bool
	Next()
	Prev()
	Equal(other AVLIterator[K]) bool
}

// AVLSet is an ordered set of unique keys.
// It is not thread safe.
type AVLSet[K any] interface {
	Len() int64
	IsEmpty() bool
	Height() int
	Root() AVLNode[K]
	// Less reports whether i sorts before j in the iteration order.
	Less(i, j K) bool
	// Insert returns false if an equivalent key is present, the set is unchanged then.
	Insert(key K) bool
	// InsertRange inserts the keys in [first, last).
	InsertRange(first, last AVLIterator[K])
	// Erase returns false if the key is absent.
	Erase(key K) bool
	Contains(key K) bool
	Find(key K) AVLIterator[K]
	// LowerBound returns the first key not less than key.
	LowerBound(key K) AVLIterator[K]
	Begin() AVLIterator[K]
	End() AVLIterator[K]
	Min() (K, bool)
	Max() (K, bool)
	Foreach(action func(idx int64, key K) bool)
	All() iter.Seq[K]
	Backward() iter.Seq[K]
	Clone() AVLSet[K]
	// CopyFrom replaces the content by the keys of src. A self copy is a no-op.
	CopyFrom(src AVLSet[K])
	Release()
}
