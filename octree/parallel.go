package octree

import (
	"context"

	"golang.org/x/sync/errgroup"

	"go.viam.com/space/morton"
)

// pointerTree is implemented by the octrees built from linked nodes.
type pointerTree[Item any] interface {
	rootNode() *pointerNode[Item]
}

// FoldParallel folds a PointerOctree or ResizingPointerOctree like Fold, but folds each of
// the root's children in its own goroutine. The children's sums are combined in ascending
// octant order, so the result equals that of Fold. f must be safe for concurrent use, which
// pure folders are. It returns false if the tree is empty, and the context's error if it is
// cancelled before every child was folded.
func FoldParallel[Item, Sum any](
	ctx context.Context,
	t pointerTree[Item],
	f Folder[Item, morton.Code, Sum],
) (Sum, bool, error) {
	var zero Sum
	root := t.rootNode()
	if root.nodeType != InternalNode {
		sum, ok := Fold[Item, Sum](root, f)
		return sum, ok, nil
	}

	children := make([]*pointerNode[Item], 0, MaxChildren)
	for _, child := range root.children {
		if child.size > 0 {
			children = append(children, child)
		}
	}
	if len(children) == 0 {
		return zero, false, nil
	}

	sums := make([]Sum, len(children))
	g, gctx := errgroup.WithContext(ctx)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sums[i], _ = Fold[Item, Sum](child, f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, false, err
	}
	return f.Fold(sums), true, nil
}
