package octree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/space/morton"
)

// ErrOutOfBounds is returned when a point is set outside of a fixed region.
var ErrOutOfBounds = errors.New("error point is outside the bounds of this octree")

// entry is an item placed in a tree. seq orders entries by when they were set.
type entry[Item any] struct {
	key   morton.Code
	point r3.Vector
	item  Item
	seq   uint64
}

// pointerNode is a node of a pointer octree, comprised of the type of node, children nodes
// (should they exist) and the entry of a filled leaf. size counts the entries below the node.
type pointerNode[Item any] struct {
	nodeType NodeType
	children []*pointerNode[Item]
	entry    entry[Item]
	size     int
}

func newLeafNodeEmpty[Item any]() *pointerNode[Item] {
	return &pointerNode[Item]{nodeType: LeafNodeEmpty}
}

func newLeafNodeFilled[Item any](e entry[Item]) *pointerNode[Item] {
	return &pointerNode[Item]{nodeType: LeafNodeFilled, entry: e, size: 1}
}

func newInternalNode[Item any](children []*pointerNode[Item]) *pointerNode[Item] {
	size := 0
	for _, child := range children {
		size += child.size
	}
	return &pointerNode[Item]{nodeType: InternalNode, children: children, size: size}
}

// set places e below the node at depth. It reports whether the tree grew, which is false when
// e replaced an entry with the same key.
func (n *pointerNode[Item]) set(e entry[Item], depth int) (bool, error) {
	switch n.nodeType {
	case InternalNode:
		if len(n.children) != MaxChildren {
			return false, errors.New("error invalid internal node detected, please check your tree")
		}
		added, err := n.children[e.key.Octant(depth)].set(e, depth+1)
		if added {
			n.size++
		}
		return added, err

	case LeafNodeFilled:
		if n.entry.key == e.key {
			n.entry = e
			return false, nil
		}
		if err := n.splitIntoOctants(depth); err != nil {
			return false, errors.Errorf("error in splitting octree into new octants: %v", err)
		}
		// The split turned this node internal, so the entry descends into a child.
		return n.set(e, depth)

	case LeafNodeEmpty:
		*n = *newLeafNodeFilled(e)
		return true, nil
	}
	return false, errors.Errorf("error unknown node type %d", n.nodeType)
}

// splitIntoOctants turns a filled leaf at depth into an internal node with eight children,
// moving the leaf's entry into the child its key descends into.
func (n *pointerNode[Item]) splitIntoOctants(depth int) error {
	switch n.nodeType {
	case InternalNode:
		return errors.New("error attempted to split internal node")
	case LeafNodeEmpty:
		return errors.New("error attempted to split empty leaf node")
	case LeafNodeFilled:
	}
	if depth >= morton.Depth {
		return errors.Errorf("error attempted to split leaf node at maximum depth %d", morton.Depth)
	}

	children := make([]*pointerNode[Item], MaxChildren)
	for i := range children {
		children[i] = newLeafNodeEmpty[Item]()
	}
	children[n.entry.key.Octant(depth)] = newLeafNodeFilled(n.entry)
	*n = *newInternalNode(children)
	return nil
}

// at returns the entry stored under key below the node at depth.
func (n *pointerNode[Item]) at(key morton.Code, depth int) (entry[Item], bool) {
	switch n.nodeType {
	case InternalNode:
		return n.children[key.Octant(depth)].at(key, depth+1)
	case LeafNodeFilled:
		if n.entry.key == key {
			return n.entry, true
		}
	case LeafNodeEmpty:
	}
	return entry[Item]{}, false
}

// Traverse visits the entries below the node.
func (n *pointerNode[Item]) Traverse(v Visitor[Item]) {
	switch n.nodeType {
	case InternalNode:
		children := 0
		for _, child := range n.children {
			if child.size == 0 {
				continue
			}
			child.Traverse(v)
			children++
		}
		if children > 0 {
			v.Node(children)
		}
	case LeafNodeFilled:
		v.Leaf(n.entry.key, n.entry.item)
	case LeafNodeEmpty:
	}
}

// collect appends every entry below the node.
func (n *pointerNode[Item]) collect(entries []entry[Item]) []entry[Item] {
	switch n.nodeType {
	case InternalNode:
		for _, child := range n.children {
			entries = child.collect(entries)
		}
	case LeafNodeFilled:
		entries = append(entries, n.entry)
	case LeafNodeEmpty:
	}
	return entries
}

// PointerOctree is an octree of linked nodes over a fixed LeveledRegion. Every leaf holds at
// most one item; a filled leaf splits into octants when an item with a different key arrives.
type PointerOctree[Item any] struct {
	logger golog.Logger
	region LeveledRegion
	root   *pointerNode[Item]
	seq    uint64
}

// NewPointerOctree creates an empty pointer octree over the region of the given level.
func NewPointerOctree[Item any](level int, logger golog.Logger) (*PointerOctree[Item], error) {
	region, err := NewLeveledRegion(level)
	if err != nil {
		return nil, err
	}
	return &PointerOctree[Item]{
		logger: logger,
		region: region,
		root:   newLeafNodeEmpty[Item](),
	}, nil
}

// Region returns the region covered by the tree.
func (t *PointerOctree[Item]) Region() LeveledRegion {
	return t.region
}

// Size returns the number of items in the tree.
func (t *PointerOctree[Item]) Size() int {
	return t.root.size
}

// Set places the item at p. It returns ErrOutOfBounds if p is outside of the tree's region.
func (t *PointerOctree[Item]) Set(p r3.Vector, item Item) error {
	key, ok := t.region.Discretize(p)
	if !ok {
		return ErrOutOfBounds
	}
	t.seq++
	added, err := t.root.set(entry[Item]{key: key, point: p, item: item, seq: t.seq}, 0)
	if err != nil {
		return err
	}
	if !added {
		t.logger.Debugw("replaced item", "point", p, "key", key)
	}
	return nil
}

// At returns the item in the leaf cell holding p.
func (t *PointerOctree[Item]) At(p r3.Vector) (Item, bool) {
	key, ok := t.region.Discretize(p)
	if !ok {
		var zero Item
		return zero, false
	}
	e, ok := t.root.at(key, 0)
	return e.item, ok
}

// Traverse visits every item in ascending key order.
func (t *PointerOctree[Item]) Traverse(v Visitor[Item]) {
	t.root.Traverse(v)
}

func (t *PointerOctree[Item]) rootNode() *pointerNode[Item] {
	return t.root
}
