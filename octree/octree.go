// Package octree implements octrees keyed by Morton codes, and a fold framework that reduces
// the contents of a tree to summary values in a single bottom-up traversal.
//
// Points are placed with a LeveledRegion, a fixed cube around the origin, or with a
// CenteredLeveledRegion, which grows one level at a time when points outside of it arrive.
// LinearOctree and PointerOctree hold items in a fixed region; ResizingPointerOctree grows its
// region as needed.
//
// A Folder turns leaf items into sums and combines the sums of up to eight children. Several
// folders run in one traversal when combined with Compose2 through Compose12 (Folder2 through
// Folder12), or with Multi when more than twelve are needed.
package octree

import (
	"github.com/golang/geo/r3"

	"go.viam.com/space/morton"
)

// Each node in the pointer octree is either an internal node which links to other nodes, an
// empty leaf with no item, or a filled leaf which holds a single item.
const (
	InternalNode = NodeType(iota)
	LeafNodeEmpty
	LeafNodeFilled
)

// NodeType represents the possible types of nodes in an octree.
type NodeType uint8

// Visitor receives the contents of a tree in post-order. Leaf is called for every item; Node
// is called once all of an internal node's non-empty children were visited, with the number of
// those children. Children are always visited in ascending octant order.
type Visitor[Item any] interface {
	Leaf(key morton.Code, item Item)
	Node(children int)
}

// Traverser is an octree that can walk its contents with a Visitor.
type Traverser[Item any] interface {
	Traverse(v Visitor[Item])
}

// Octree is a store of items placed by position.
type Octree[Item any] interface {
	Traverser[Item]

	// Size returns the number of items in the tree.
	Size() int

	// Set places the item at p, replacing any item already in the same leaf cell.
	Set(p r3.Vector, item Item) error

	// At returns the item in the leaf cell holding p.
	At(p r3.Vector) (Item, bool)
}

// foldVisitor folds the events of a traversal with a stack of sums.
type foldVisitor[Item, Sum any] struct {
	folder Folder[Item, morton.Code, Sum]
	stack  []Sum
}

func (v *foldVisitor[Item, Sum]) Leaf(key morton.Code, item Item) {
	v.stack = append(v.stack, v.folder.Gather(key, item))
}

func (v *foldVisitor[Item, Sum]) Node(children int) {
	checkFoldArity(children)
	var sums [MaxChildren]Sum
	top := len(v.stack) - children
	n := copy(sums[:], v.stack[top:])
	v.stack = append(v.stack[:top], v.folder.Fold(sums[:n]))
}

// Fold folds the whole tree with f, returning false if the tree is empty.
func Fold[Item, Sum any](t Traverser[Item], f Folder[Item, morton.Code, Sum]) (Sum, bool) {
	v := &foldVisitor[Item, Sum]{folder: f}
	t.Traverse(v)
	if len(v.stack) == 0 {
		var zero Sum
		return zero, false
	}
	return v.stack[len(v.stack)-1], true
}
