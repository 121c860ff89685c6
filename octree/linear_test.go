package octree

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/space/morton"
)

func TestLinearOctree(t *testing.T) {
	logger, logs := golog.NewObservedTestLogger(t)
	tree, err := NewLinearOctree[string](0, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree.Region().Level(), test.ShouldEqual, 0)

	_, ok := Fold[string, int](tree, CountFolder[string, morton.Code]{})
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, tree.Set(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}, "a"), test.ShouldBeNil)
	test.That(t, tree.Set(r3.Vector{X: -0.5, Y: -0.5, Z: -0.5}, "b"), test.ShouldBeNil)
	test.That(t, tree.Set(r3.Vector{X: 1, Y: 1, Z: 1}, "c"), test.ShouldBeNil)
	test.That(t, tree.Set(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}, "d"), test.ShouldBeNil)
	test.That(t, tree.Set(r3.Vector{X: 1.5}, "e"), test.ShouldBeError, ErrOutOfBounds)
	test.That(t, tree.Size(), test.ShouldEqual, 3)
	test.That(t, len(logs.FilterMessageSnippet("replaced item").All()), test.ShouldEqual, 1)

	item, ok := tree.At(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, item, test.ShouldEqual, "d")
	item, ok = tree.At(r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, item, test.ShouldEqual, "c")
	_, ok = tree.At(r3.Vector{X: 0.25})
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = tree.At(r3.Vector{X: 2})
	test.That(t, ok, test.ShouldBeFalse)

	for i := 1; i < len(tree.entries); i++ {
		test.That(t, tree.entries[i].key, test.ShouldBeGreaterThan, tree.entries[i-1].key)
	}

	rec := &recorder[string]{}
	tree.Traverse(rec)
	// b sits alone in octant 0; d and c share octant 7 down to depth 2.
	test.That(t, len(rec.events), test.ShouldEqual, 6)
	test.That(t, rec.events[3:], test.ShouldResemble, []string{"node 2", "node 1", "node 2"})

	letters := FolderFuncs[string, morton.Code, string]{
		GatherFunc: func(_ morton.Code, s string) string { return s },
		FoldFunc: func(sums []string) string {
			out := ""
			for _, s := range sums {
				out += s
			}
			return out
		},
	}
	word, ok := Fold[string, string](tree, letters)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, word, test.ShouldEqual, "bdc")

	_, err = NewLinearOctree[string](MinLevel-1, golog.NewTestLogger(t))
	test.That(t, errors.Is(err, ErrLevelOutOfRange), test.ShouldBeTrue)
}
