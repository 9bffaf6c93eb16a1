package tree

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

var (
	ErrAVLOrderViolation       = errors.New("[avl] order violation")
	ErrAVLBalanceViolation     = errors.New("[avl] balance violation")
	ErrAVLHeightViolation      = errors.New("[avl] height cache violation")
	ErrAVLLinkViolation        = errors.New("[avl] parent link violation")
	ErrAVLSizeViolation        = errors.New("[avl] size violation")
	ErrAVLHeightBoundViolation = errors.New("[avl] height bound violation")
)

// avl tree rule validation utilities.

// AVLHeightBound is the max height of an avl tree with n nodes.
// h < 1.4405 * log2(n+2) - 0.3277
func AVLHeightBound(n int64) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}

// Inorder traversal, the keys must be strictly ascending in the set order.
func AVLOrderViolationValidate[K any](set AVLSet[K]) error {
	var aux AVLNode[K] = set.Root()
	if aux == nil {
		return nil
	}

	stack := make([]AVLNode[K], 0, aux.Height())
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	var prev AVLNode[K]
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if prev != nil && !set.Less(prev.Key(), aux.Key()) {
			return fmt.Errorf("%w: key %v is not less than key %v", ErrAVLOrderViolation, prev.Key(), aux.Key())
		}
		prev = aux
		stack = stack[:size-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return nil
}

// Postorder traversal, every cached height must be 1 + max(children)
// and the children heights differ at most by 1.
func AVLBalanceViolationValidate[K any](set AVLSet[K]) error {
	_, err := balanceValidate[K](set.Root())
	return err
}

func balanceValidate[K any](node AVLNode[K]) (int, error) {
	if node == nil {
		return 0, nil
	}
	lh, err := balanceValidate[K](node.Left())
	if err != nil {
		return 0, err
	}
	rh, err := balanceValidate[K](node.Right())
	if err != nil {
		return 0, err
	}
	if h := max(lh, rh) + 1; h != node.Height() {
		return 0, fmt.Errorf("%w: key %v caches %d, expected %d", ErrAVLHeightViolation, node.Key(), node.Height(), h)
	}
	if diff := lh - rh; diff < -1 || diff > 1 {
		return 0, fmt.Errorf("%w: key %v left %d right %d", ErrAVLBalanceViolation, node.Key(), lh, rh)
	}
	return node.Height(), nil
}

// BFS traversal, every child must point back to its owner and the root
// has no parent.
func AVLLinkViolationValidate[K any](set AVLSet[K]) error {
	root := set.Root()
	if root == nil {
		return nil
	}
	if root.Parent() != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrAVLLinkViolation, root.Key())
	}

	queue := make([]AVLNode[K], 0, set.Len()>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, root)
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		for _, child := range [2]AVLNode[K]{aux.Left(), aux.Right()} {
			if child == nil {
				continue
			}
			if child.Parent() != aux {
				return fmt.Errorf("%w: key %v does not point back to key %v", ErrAVLLinkViolation, child.Key(), aux.Key())
			}
			queue = append(queue, child)
		}
	}
	return nil
}

// The reachable nodes must be equal to the set length.
func AVLSizeViolationValidate[K any](set AVLSet[K]) error {
	reachable := int64(0)
	stack := make([]AVLNode[K], 0, 16)
	defer func() {
		clear(stack)
	}()
	if root := set.Root(); root != nil {
		stack = append(stack, root)
	}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		reachable++
		if l := aux.Left(); l != nil {
			stack = append(stack, l)
		}
		if r := aux.Right(); r != nil {
			stack = append(stack, r)
		}
	}
	if reachable != set.Len() {
		return fmt.Errorf("%w: reachable %d, len %d", ErrAVLSizeViolation, reachable, set.Len())
	}
	return nil
}

func AVLHeightBoundValidate[K any](set AVLSet[K]) error {
	if bound := AVLHeightBound(set.Len()); float64(set.Height()) > bound {
		return fmt.Errorf("%w: height %d, bound %.3f", ErrAVLHeightBoundViolation, set.Height(), bound)
	}
	return nil
}

// AVLValidate runs all validations and combines every violation.
func AVLValidate[K any](set AVLSet[K]) error {
	return multierr.Combine(
		AVLOrderViolationValidate[K](set),
		AVLBalanceViolationValidate[K](set),
		AVLLinkViolationValidate[K](set),
		AVLSizeViolationValidate[K](set),
		AVLHeightBoundValidate[K](set),
	)
}
