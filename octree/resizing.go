package octree

import (
	"sort"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ResizingPointerOctree is a pointer octree whose region grows to fit the points set in it.
// A point outside of the region expands the region toward it, one level at a time, and the
// items already stored are re-keyed for the grown region.
//
// Growing the region doubles the size of a leaf cell, so items that were in neighbouring cells
// can end up sharing one. The item set most recently wins.
type ResizingPointerOctree[Item any] struct {
	logger golog.Logger
	region CenteredLeveledRegion
	root   *pointerNode[Item]
	seq    uint64
}

// NewResizingPointerOctree creates an empty resizing pointer octree starting out with the
// region described by cfg.
func NewResizingPointerOctree[Item any](cfg *Config, logger golog.Logger) (*ResizingPointerOctree[Item], error) {
	region, err := cfg.Region()
	if err != nil {
		return nil, err
	}
	return &ResizingPointerOctree[Item]{
		logger: logger,
		region: region,
		root:   newLeafNodeEmpty[Item](),
	}, nil
}

// Region returns the region currently covered by the tree.
func (t *ResizingPointerOctree[Item]) Region() CenteredLeveledRegion {
	return t.region
}

// Size returns the number of items in the tree.
func (t *ResizingPointerOctree[Item]) Size() int {
	return t.root.size
}

// Set places the item at p, growing the region first if p is outside of it. Points with NaN
// or infinite coordinates are rejected.
func (t *ResizingPointerOctree[Item]) Set(p r3.Vector, item Item) error {
	if !isFinite(p) {
		return errors.Errorf("error cannot place non-finite point %v", p)
	}
	region, err := t.fit(p)
	if err != nil {
		return err
	}
	if region != t.region {
		if err := t.rekey(region); err != nil {
			return err
		}
	}

	key, ok := t.region.Discretize(p)
	if !ok {
		return errors.Wrapf(ErrOutOfBounds, "point %v after expanding", p)
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

// fit returns the current region expanded until p can be discretized in it. The tree's own
// region is left untouched.
func (t *ResizingPointerOctree[Item]) fit(p r3.Vector) (CenteredLeveledRegion, error) {
	region := t.region
	for {
		if _, ok := region.Discretize(p); ok {
			return region, nil
		}
		octant, ok := region.ExpandLoc(p)
		if !ok {
			// p is within the rounded bounds but not within the rounded bound of p - center,
			// which happens for centers far from the origin. Grow toward p all the same.
			octant = region.towardOctant(p)
		}
		if err := region.Expand(octant); err != nil {
			return t.region, err
		}
		t.logger.Debugw("expanded octree region",
			"octant", octant, "level", region.Level(), "center", region.Center())
	}
}

// rekey rebuilds the tree for region, replaying entries in the order they were set. The tree
// is only changed if every entry fits.
func (t *ResizingPointerOctree[Item]) rekey(region CenteredLeveledRegion) error {
	entries := t.root.collect(nil)
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	root := newLeafNodeEmpty[Item]()
	merged := 0
	for _, e := range entries {
		key, ok := region.Discretize(e.point)
		if !ok {
			return errors.Wrapf(ErrOutOfBounds, "re-keying point %v", e.point)
		}
		e.key = key
		added, err := root.set(e, 0)
		if err != nil {
			return err
		}
		if !added {
			merged++
		}
	}
	if merged > 0 {
		t.logger.Debugw("merged items sharing a leaf cell after expanding", "merged", merged)
	}
	t.region = region
	t.root = root
	return nil
}

// At returns the item in the leaf cell holding p.
func (t *ResizingPointerOctree[Item]) At(p r3.Vector) (Item, bool) {
	key, ok := t.region.Discretize(p)
	if !ok {
		var zero Item
		return zero, false
	}
	e, ok := t.root.at(key, 0)
	return e.item, ok
}

// Traverse visits every item in ascending key order.
func (t *ResizingPointerOctree[Item]) Traverse(v Visitor[Item]) {
	t.root.Traverse(v)
}

func (t *ResizingPointerOctree[Item]) rootNode() *pointerNode[Item] {
	return t.root
}
