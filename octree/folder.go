package octree

//go:generate go run ./internal/gentuple -o folder_tuple.go

import (
	"github.com/pkg/errors"
)

// MaxChildren is the most sums a single Fold call receives, one per octant.
const MaxChildren = 8

// Folder performs a bottom-up fold across an octree. Gather converts a leaf item into the
// folder's Sum type and Fold propagates the sums of a node's children up to the node.
//
// Fold is always called with at least one and at most MaxChildren sums. Stores never fold a
// node without children, and pass the sums in ascending octant order so folders that depend
// on child order see a stable sequence. Folders must not retain the sums slice.
type Folder[Item, K, Sum any] interface {
	Gather(key K, item Item) Sum
	Fold(sums []Sum) Sum
}

// checkFoldArity panics when a Fold call breaks the 1 to MaxChildren contract. Such a call is
// a bug in the caller and has no meaningful result.
func checkFoldArity(n int) {
	if n < 1 || n > MaxChildren {
		panic(errors.Errorf("octree: fold called with %d sums, want 1 to %d", n, MaxChildren))
	}
}

// FolderFuncs builds a Folder out of two functions.
type FolderFuncs[Item, K, Sum any] struct {
	GatherFunc func(key K, item Item) Sum
	FoldFunc   func(sums []Sum) Sum
}

// Gather calls GatherFunc.
func (f FolderFuncs[Item, K, Sum]) Gather(key K, item Item) Sum {
	return f.GatherFunc(key, item)
}

// Fold calls FoldFunc.
func (f FolderFuncs[Item, K, Sum]) Fold(sums []Sum) Sum {
	return f.FoldFunc(sums)
}

// Unit is the only value produced by NullFolder.
type Unit struct{}

// NullFolder produces nothing but Unit. It is useful to run a traversal without computing an
// aggregate, or as a placeholder inside a composite folder.
type NullFolder[Item, K any] struct{}

// Gather returns Unit.
func (NullFolder[Item, K]) Gather(K, Item) Unit {
	return Unit{}
}

// Fold returns Unit.
func (NullFolder[Item, K]) Fold([]Unit) Unit {
	return Unit{}
}
