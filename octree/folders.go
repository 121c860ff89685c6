package octree

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat"
)

// CountFolder counts the leaves below each node.
type CountFolder[Item, K any] struct{}

// Gather counts one leaf.
func (CountFolder[Item, K]) Gather(K, Item) int {
	return 1
}

// Fold adds up the children's counts.
func (CountFolder[Item, K]) Fold(sums []int) int {
	total := 0
	for _, s := range sums {
		total += s
	}
	return total
}

// KeysFolder collects the keys of all leaves below each node, in traversal order.
type KeysFolder[Item, K any] struct{}

// Gather returns the leaf's key.
func (KeysFolder[Item, K]) Gather(key K, _ Item) []K {
	return []K{key}
}

// Fold concatenates the children's keys in the order given.
func (KeysFolder[Item, K]) Fold(sums [][]K) []K {
	n := 0
	for _, s := range sums {
		n += len(s)
	}
	keys := make([]K, 0, n)
	for _, s := range sums {
		keys = append(keys, s...)
	}
	return keys
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max r3.Vector
}

// NewBounds returns an empty box that any merged point will replace.
func NewBounds() Bounds {
	return Bounds{
		Min: r3.Vector{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: r3.Vector{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Merge grows the box to contain other.
func (b *Bounds) Merge(other Bounds) {
	b.Min = r3.Vector{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y), Z: math.Min(b.Min.Z, other.Min.Z)}
	b.Max = r3.Vector{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y), Z: math.Max(b.Max.Z, other.Max.Z)}
}

// BoundsFolder computes the bounding box of the item locations below each node.
type BoundsFolder[Item, K any] struct {
	Locate func(Item) r3.Vector
}

// Gather returns the degenerate box around the item's location.
func (f BoundsFolder[Item, K]) Gather(_ K, item Item) Bounds {
	p := f.Locate(item)
	return Bounds{Min: p, Max: p}
}

// Fold merges the children's boxes.
func (f BoundsFolder[Item, K]) Fold(sums []Bounds) Bounds {
	b := NewBounds()
	for _, s := range sums {
		b.Merge(s)
	}
	return b
}

// Centroid is a weighted mean location.
type Centroid struct {
	Mean   r3.Vector
	Weight float64
}

// CentroidFolder computes the weighted mean of the item locations below each node. Items
// weigh 1 when Weigh is nil.
type CentroidFolder[Item, K any] struct {
	Locate func(Item) r3.Vector
	Weigh  func(Item) float64
}

// Gather returns the item's location with its weight.
func (f CentroidFolder[Item, K]) Gather(_ K, item Item) Centroid {
	w := 1.0
	if f.Weigh != nil {
		w = f.Weigh(item)
	}
	return Centroid{Mean: f.Locate(item), Weight: w}
}

// Fold combines the children's means weighted by their total weights.
func (f CentroidFolder[Item, K]) Fold(sums []Centroid) Centroid {
	var (
		xs, ys, zs, ws [MaxChildren]float64
		total          float64
	)
	for i, s := range sums {
		xs[i], ys[i], zs[i], ws[i] = s.Mean.X, s.Mean.Y, s.Mean.Z, s.Weight
		total += s.Weight
	}
	if total == 0 {
		return Centroid{}
	}
	n := len(sums)
	return Centroid{
		Mean: r3.Vector{
			X: stat.Mean(xs[:n], ws[:n]),
			Y: stat.Mean(ys[:n], ws[:n]),
			Z: stat.Mean(zs[:n], ws[:n]),
		},
		Weight: total,
	}
}
