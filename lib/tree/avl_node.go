package tree

type avlNode[K any] struct {
	parent *avlNode[K] // back-reference for traversal only
	left   *avlNode[K]
	right  *avlNode[K]
	key    K
	height int
}

func newAVLNode[K any](key K) *avlNode[K] {
	return &avlNode[K]{
		key:    key,
		height: 1,
	}
}

func (node *avlNode[K]) Key() K {
	return node.key
}

func (node *avlNode[K]) Height() int {
	if node == nil {
		return 0
	}
	return node.height
}

func (node *avlNode[K]) Left() AVLNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *avlNode[K]) Right() AVLNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *avlNode[K]) Parent() AVLNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *avlNode[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *avlNode[K]) Direction() AVLDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avl] nil node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

// Re-computes the height from the cached heights of the children.
func (node *avlNode[K]) heightSubtree() int {
	if node == nil {
		return 0
	}
	return max(node.left.Height(), node.right.Height()) + 1
}

// Positive means left-heavy, negative means right-heavy.
func (node *avlNode[K]) balance() int {
	if node == nil {
		return 0
	}
	return node.left.Height() - node.right.Height()
}

func (node *avlNode[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *avlNode[K]) minimum() *avlNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *avlNode[K]) maximum() *avlNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *avlNode[K]) pred() *avlNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack until x is in the right subtree of aux.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *avlNode[K]) succ() *avlNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack until x is in the left subtree of aux.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// Detaches every link so that a removed node cannot reach the tree any more.
func (node *avlNode[K]) unlink() {
	node.parent = nil
	node.left = nil
	node.right = nil
	node.height = 0
}
