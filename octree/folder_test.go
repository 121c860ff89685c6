package octree

import (
	"sort"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/space/morton"
)

// leafPoints are eight points in region level 0 forming a depth 2 tree: four leaves below
// root octant 0 and four below root octant 7.
var leafPoints = []r3.Vector{
	{X: -0.75, Y: -0.75, Z: -0.75},
	{X: -0.25, Y: -0.75, Z: -0.75},
	{X: -0.75, Y: -0.25, Z: -0.75},
	{X: -0.75, Y: -0.75, Z: -0.25},
	{X: 0.25, Y: 0.25, Z: 0.25},
	{X: 0.75, Y: 0.25, Z: 0.25},
	{X: 0.25, Y: 0.75, Z: 0.25},
	{X: 0.25, Y: 0.25, Z: 0.75},
}

func leafKeys(t *testing.T) []morton.Code {
	t.Helper()
	region := mustLeveledRegion(t, 0)
	keys := make([]morton.Code, 0, len(leafPoints))
	for _, p := range leafPoints {
		key, ok := region.Discretize(p)
		test.That(t, ok, test.ShouldBeTrue)
		keys = append(keys, key)
	}
	return keys
}

// foldSynthetic folds leafPoints by hand as a root with two children of four leaves each.
func foldSynthetic[Sum any](t *testing.T, f Folder[r3.Vector, morton.Code, Sum]) Sum {
	t.Helper()
	keys := leafKeys(t)
	gathered := make([]Sum, len(keys))
	for i, key := range keys {
		gathered[i] = f.Gather(key, leafPoints[i])
	}
	return f.Fold([]Sum{f.Fold(gathered[:4]), f.Fold(gathered[4:])})
}

func TestSyntheticTreeShape(t *testing.T) {
	keys := leafKeys(t)
	for i, key := range keys {
		if i < 4 {
			test.That(t, key.Octant(0), test.ShouldEqual, uint8(0))
		} else {
			test.That(t, key.Octant(0), test.ShouldEqual, uint8(7))
		}
	}
	test.That(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }), test.ShouldBeTrue)
}

func TestCompositeFolderEquivalence(t *testing.T) {
	count := CountFolder[r3.Vector, morton.Code]{}
	keys := KeysFolder[r3.Vector, morton.Code]{}

	countAlone := foldSynthetic[int](t, count)
	keysAlone := foldSynthetic[[]morton.Code](t, keys)
	test.That(t, countAlone, test.ShouldEqual, 8)
	test.That(t, keysAlone, test.ShouldResemble, leafKeys(t))

	pair := Compose2[r3.Vector, morton.Code, int, []morton.Code](count, keys)
	both := foldSynthetic[Tuple2[int, []morton.Code]](t, pair)
	test.That(t, both, test.ShouldResemble, Tuple2[int, []morton.Code]{V0: countAlone, V1: keysAlone})

	// Members see exactly what they would alone, regardless of position.
	swapped := Compose2[r3.Vector, morton.Code, []morton.Code, int](keys, count)
	test.That(t, foldSynthetic[Tuple2[[]morton.Code, int]](t, swapped), test.ShouldResemble,
		Tuple2[[]morton.Code, int]{V0: keysAlone, V1: countAlone})
}

func TestWideComposite(t *testing.T) {
	count := CountFolder[r3.Vector, morton.Code]{}
	null := NullFolder[r3.Vector, morton.Code]{}
	bounds := BoundsFolder[r3.Vector, morton.Code]{Locate: func(p r3.Vector) r3.Vector { return p }}

	wide := Compose12[r3.Vector, morton.Code, int, Unit, Bounds, int, int, int, int, int, int, int, int, int](
		count, null, bounds, count, count, count, count, count, count, count, count, count)
	sum := foldSynthetic[Tuple12[int, Unit, Bounds, int, int, int, int, int, int, int, int, int]](t, wide)
	test.That(t, sum.V0, test.ShouldEqual, 8)
	test.That(t, sum.V1, test.ShouldResemble, Unit{})
	test.That(t, sum.V2, test.ShouldResemble, foldSynthetic[Bounds](t, bounds))
	test.That(t, sum.V11, test.ShouldEqual, 8)
}

func TestNullFolder(t *testing.T) {
	null := NullFolder[r3.Vector, morton.Code]{}
	test.That(t, foldSynthetic[Unit](t, null), test.ShouldResemble, Unit{})
	test.That(t, null.Gather(0, r3.Vector{}), test.ShouldResemble, Unit{})
	test.That(t, null.Fold([]Unit{{}}), test.ShouldResemble, Unit{})
}

func TestFoldArity(t *testing.T) {
	pair := Compose2[r3.Vector, morton.Code, int, Unit](CountFolder[r3.Vector, morton.Code]{}, NullFolder[r3.Vector, morton.Code]{})
	one := pair.Gather(0, r3.Vector{})

	test.That(t, func() { pair.Fold(nil) }, test.ShouldPanic)
	test.That(t, func() { pair.Fold(make([]Tuple2[int, Unit], MaxChildren+1)) }, test.ShouldPanic)
	test.That(t, func() { pair.Fold([]Tuple2[int, Unit]{one}) }, test.ShouldNotPanic)

	full := make([]Tuple2[int, Unit], MaxChildren)
	for i := range full {
		full[i] = one
	}
	test.That(t, pair.Fold(full).V0, test.ShouldEqual, MaxChildren)

	multi := NewMulti[r3.Vector, morton.Code](Erase[r3.Vector, morton.Code, int](CountFolder[r3.Vector, morton.Code]{}))
	test.That(t, func() { multi.Fold(nil) }, test.ShouldPanic)
}

func TestMulti(t *testing.T) {
	count := CountFolder[r3.Vector, morton.Code]{}
	keys := KeysFolder[r3.Vector, morton.Code]{}
	centroid := CentroidFolder[r3.Vector, morton.Code]{Locate: func(p r3.Vector) r3.Vector { return p }}

	multi := NewMulti[r3.Vector, morton.Code](
		Erase[r3.Vector, morton.Code, int](count),
		Erase[r3.Vector, morton.Code, []morton.Code](keys),
		Erase[r3.Vector, morton.Code, Centroid](centroid),
	)
	sum := foldSynthetic[[]any](t, multi)
	test.That(t, len(sum), test.ShouldEqual, 3)
	test.That(t, sum[0], test.ShouldEqual, foldSynthetic[int](t, count))
	test.That(t, sum[1], test.ShouldResemble, foldSynthetic[[]morton.Code](t, keys))
	test.That(t, sum[2], test.ShouldResemble, foldSynthetic[Centroid](t, centroid))

	test.That(t, func() { multi.Fold([][]any{{1, 2}}) }, test.ShouldPanic)
	test.That(t, func() { multi.Fold([][]any{{"one", nil, nil}}) }, test.ShouldPanic)

	// Members whose Sum is an interface may produce nil sums.
	firstErr := FolderFuncs[r3.Vector, morton.Code, error]{
		GatherFunc: func(morton.Code, r3.Vector) error { return nil },
		FoldFunc: func(sums []error) error {
			for _, err := range sums {
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	withErr := NewMulti[r3.Vector, morton.Code](
		Erase[r3.Vector, morton.Code, int](count),
		Erase[r3.Vector, morton.Code, error](firstErr),
	)
	test.That(t, func() { withErr.Fold([][]any{withErr.Gather(0, r3.Vector{})}) }, test.ShouldNotPanic)
	sum = foldSynthetic[[]any](t, withErr)
	test.That(t, sum[0], test.ShouldEqual, 8)
	test.That(t, sum[1], test.ShouldBeNil)
}

func TestGeometryFolders(t *testing.T) {
	locate := func(p r3.Vector) r3.Vector { return p }

	bounds := foldSynthetic[Bounds](t, BoundsFolder[r3.Vector, morton.Code]{Locate: locate})
	test.That(t, bounds.Min, test.ShouldResemble, r3.Vector{X: -0.75, Y: -0.75, Z: -0.75})
	test.That(t, bounds.Max, test.ShouldResemble, r3.Vector{X: 0.75, Y: 0.75, Z: 0.75})

	centroid := foldSynthetic[Centroid](t, CentroidFolder[r3.Vector, morton.Code]{Locate: locate})
	test.That(t, centroid.Weight, test.ShouldEqual, 8.0)
	test.That(t, centroid.Mean.X, test.ShouldAlmostEqual, -0.125)
	test.That(t, centroid.Mean.Y, test.ShouldAlmostEqual, -0.125)
	test.That(t, centroid.Mean.Z, test.ShouldAlmostEqual, -0.125)

	// Only the points of root octant 7 carry weight.
	weighted := foldSynthetic[Centroid](t, CentroidFolder[r3.Vector, morton.Code]{
		Locate: locate,
		Weigh: func(p r3.Vector) float64 {
			if p.X > 0 {
				return 1
			}
			return 0
		},
	})
	test.That(t, weighted.Weight, test.ShouldEqual, 4.0)
	test.That(t, weighted.Mean.X, test.ShouldAlmostEqual, 0.375)
	test.That(t, weighted.Mean.Y, test.ShouldAlmostEqual, 0.375)

	zero := CentroidFolder[r3.Vector, morton.Code]{Locate: locate, Weigh: func(r3.Vector) float64 { return 0 }}
	test.That(t, foldSynthetic[Centroid](t, zero), test.ShouldResemble, Centroid{})
}

func TestFolderFuncs(t *testing.T) {
	maxX := FolderFuncs[r3.Vector, morton.Code, float64]{
		GatherFunc: func(_ morton.Code, p r3.Vector) float64 { return p.X },
		FoldFunc: func(sums []float64) float64 {
			m := sums[0]
			for _, s := range sums[1:] {
				if s > m {
					m = s
				}
			}
			return m
		},
	}
	test.That(t, foldSynthetic[float64](t, maxX), test.ShouldEqual, 0.75)
}
