package octree

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Erase hides the Sum type of a folder so it can be placed in a Multi next to folders with
// different Sum types.
func Erase[Item, K, Sum any](f Folder[Item, K, Sum]) Folder[Item, K, any] {
	return erased[Item, K, Sum]{f}
}

type erased[Item, K, Sum any] struct {
	f Folder[Item, K, Sum]
}

func (e erased[Item, K, Sum]) Gather(key K, item Item) any {
	return e.f.Gather(key, item)
}

func (e erased[Item, K, Sum]) Fold(sums []any) any {
	typed := make([]Sum, len(sums))
	for i, s := range sums {
		// A nil interface Sum, such as a nil error, comes back as an untyped nil.
		if s == nil {
			continue
		}
		v, ok := s.(Sum)
		if !ok {
			panic(errors.Errorf("octree: erased folder got sum of type %T", s))
		}
		typed[i] = v
	}
	return e.f.Fold(typed)
}

// Multi composes any number of type-erased folders. Its Sum holds one entry per member, in
// member order. Use the generated Folder2 to Folder12 when the arity is known and static
// typing of the sums matters; Multi has no arity ceiling.
type Multi[Item, K any] []Folder[Item, K, any]

// NewMulti returns a Multi over the given folders.
func NewMulti[Item, K any](folders ...Folder[Item, K, any]) Multi[Item, K] {
	return Multi[Item, K](folders)
}

// Gather gathers the item with every member folder.
func (m Multi[Item, K]) Gather(key K, item Item) []any {
	return lo.Map(m, func(f Folder[Item, K, any], _ int) any {
		return f.Gather(key, item)
	})
}

// Fold folds the i-th entry of every child sum with the i-th member folder.
func (m Multi[Item, K]) Fold(sums [][]any) []any {
	checkFoldArity(len(sums))
	for _, s := range sums {
		if len(s) != len(m) {
			panic(errors.Errorf("octree: multi folder of %d members got sum of %d entries", len(m), len(s)))
		}
	}
	return lo.Map(m, func(f Folder[Item, K, any], i int) any {
		return f.Fold(lo.Map(sums, func(s []any, _ int) any {
			return s[i]
		}))
	})
}
