package octree

import (
	"slices"
	"sort"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"go.viam.com/space/morton"
)

// LinearOctree stores items in a slice sorted by Morton code over a fixed LeveledRegion. Nodes
// are not stored; a node is the run of codes sharing its prefix, and a run of a single code is
// a leaf. It has the same shape as a PointerOctree with the same contents.
type LinearOctree[Item any] struct {
	logger  golog.Logger
	region  LeveledRegion
	entries []entry[Item]
}

// NewLinearOctree creates an empty linear octree over the region of the given level.
func NewLinearOctree[Item any](level int, logger golog.Logger) (*LinearOctree[Item], error) {
	region, err := NewLeveledRegion(level)
	if err != nil {
		return nil, err
	}
	return &LinearOctree[Item]{logger: logger, region: region}, nil
}

// Region returns the region covered by the tree.
func (t *LinearOctree[Item]) Region() LeveledRegion {
	return t.region
}

// Size returns the number of items in the tree.
func (t *LinearOctree[Item]) Size() int {
	return len(t.entries)
}

func (t *LinearOctree[Item]) search(key morton.Code) (int, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].key >= key })
	return i, i < len(t.entries) && t.entries[i].key == key
}

// Set places the item at p. It returns ErrOutOfBounds if p is outside of the tree's region.
func (t *LinearOctree[Item]) Set(p r3.Vector, item Item) error {
	key, ok := t.region.Discretize(p)
	if !ok {
		return ErrOutOfBounds
	}
	e := entry[Item]{key: key, point: p, item: item}
	i, found := t.search(key)
	if found {
		t.entries[i] = e
		t.logger.Debugw("replaced item", "point", p, "key", key)
		return nil
	}
	t.entries = slices.Insert(t.entries, i, e)
	return nil
}

// At returns the item in the leaf cell holding p.
func (t *LinearOctree[Item]) At(p r3.Vector) (Item, bool) {
	key, ok := t.region.Discretize(p)
	if !ok {
		var zero Item
		return zero, false
	}
	i, found := t.search(key)
	if !found {
		var zero Item
		return zero, false
	}
	return t.entries[i].item, true
}

// Traverse visits every item in ascending key order.
func (t *LinearOctree[Item]) Traverse(v Visitor[Item]) {
	if len(t.entries) == 0 {
		return
	}
	traverseRun(v, t.entries, 0)
}

// traverseRun visits a run of entries sharing their prefix above depth.
func traverseRun[Item any](v Visitor[Item], run []entry[Item], depth int) {
	if len(run) == 1 {
		v.Leaf(run[0].key, run[0].item)
		return
	}
	children := 0
	for start := 0; start < len(run); {
		octant := run[start].key.Octant(depth)
		rest := run[start:]
		end := start + sort.Search(len(rest), func(i int) bool { return rest[i].key.Octant(depth) > octant })
		traverseRun(v, run[start:end], depth+1)
		children++
		start = end
	}
	v.Node(children)
}
