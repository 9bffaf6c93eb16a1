package tree

// A nil node is the end sentinel. The root snapshot lets the end
// sentinel step back onto the maximum key.
type avlIterator[K any] struct {
	node *avlNode[K]
	root *avlNode[K]
}

func newAVLIterator[K any](node, root *avlNode[K]) *avlIterator[K] {
	return &avlIterator[K]{
		node: node,
		root: root,
	}
}

// Key panics on the end sentinel.
func (it *avlIterator[K]) Key() K {
	if it.node == nil {
		panic( /* debug assertion */ "[avl] dereference the end iterator")
	}
	return it.node.key
}

func (it *avlIterator[K]) IsEnd() bool {
	return it.node == nil
}

// Next steps onto the successor. The end sentinel stays where it is.
func (it *avlIterator[K]) Next() {
	if it.node == nil {
		return
	}
	it.node = it.node.succ()
}

// Prev steps onto the predecessor. Stepping back from the end sentinel
// yields the maximum, stepping back from the minimum yields the end sentinel.
func (it *avlIterator[K]) Prev() {
	if it.node == nil {
		it.node = it.root.maximum()
		return
	}
	it.node = it.node.pred()
}

func (it *avlIterator[K]) Equal(other AVLIterator[K]) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*avlIterator[K])
	if !ok || o == nil {
		return false
	}
	return it.node == o.node
}
