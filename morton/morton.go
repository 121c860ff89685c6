// Package morton implements 3-dimensional Morton (Z-order) codes over the unit cube.
//
// A Code interleaves the bits of three 21-bit cell coordinates so that bit 3*i+a holds bit i
// of axis a (x=0, y=1, z=2). Codes sort so that every octree node owns a contiguous run of
// codes sharing its prefix.
package morton

import (
	"math"

	"github.com/golang/geo/r3"
)

// Depth is the number of octree levels encoded by a Code.
const Depth = 21

const (
	cellsPerAxis = 1 << Depth
	axisMask     = cellsPerAxis - 1
)

// Code is a Morton code at Depth levels of subdivision.
type Code uint64

// Max is the largest valid code, the last cell of the unit cube.
const Max = Code(1<<(3*Depth) - 1)

// spread3 moves the low 21 bits of v so that two zero bits follow each of them.
func spread3(v uint64) uint64 {
	v &= axisMask
	v = (v | v<<32) & 0x1f00000000ffff
	v = (v | v<<16) & 0x1f0000ff0000ff
	v = (v | v<<8) & 0x100f00f00f00f00f
	v = (v | v<<4) & 0x10c30c30c30c30c3
	v = (v | v<<2) & 0x1249249249249249
	return v
}

// compact3 is the inverse of spread3.
func compact3(v uint64) uint64 {
	v &= 0x1249249249249249
	v = (v ^ v>>2) & 0x10c30c30c30c30c3
	v = (v ^ v>>4) & 0x100f00f00f00f00f
	v = (v ^ v>>8) & 0x1f0000ff0000ff
	v = (v ^ v>>16) & 0x1f00000000ffff
	v = (v ^ v>>32) & axisMask
	return v
}

// Encode interleaves three cell coordinates. Only the low Depth bits of each are used.
func Encode(x, y, z uint32) Code {
	return Code(spread3(uint64(x)) | spread3(uint64(y))<<1 | spread3(uint64(z))<<2)
}

// Decode returns the cell coordinates of the code.
func (c Code) Decode() (x, y, z uint32) {
	return uint32(compact3(uint64(c))), uint32(compact3(uint64(c) >> 1)), uint32(compact3(uint64(c) >> 2))
}

// toCell scales a normalized coordinate onto the cell grid. A coordinate of exactly 1 lands in
// the last cell rather than overflowing the grid.
func toCell(n float64) uint32 {
	scaled := math.Floor(n * cellsPerAxis)
	switch {
	case scaled < 0:
		return 0
	case scaled > axisMask:
		return axisMask
	default:
		return uint32(scaled)
	}
}

// FromUnit encodes a point of the unit cube. Components are clamped to [0, 1].
func FromUnit(v r3.Vector) Code {
	return Encode(toCell(v.X), toCell(v.Y), toCell(v.Z))
}

// Unit returns the minimum corner of the code's leaf cell in the unit cube.
func (c Code) Unit() r3.Vector {
	x, y, z := c.Decode()
	return r3.Vector{
		X: float64(x) / cellsPerAxis,
		Y: float64(y) / cellsPerAxis,
		Z: float64(z) / cellsPerAxis,
	}
}

// Octant returns the child index (0-7) the code descends into below a node at the given
// depth, where the root is depth 0. The index packs x into bit 0, y into bit 1 and z into bit 2.
func (c Code) Octant(depth int) uint8 {
	return uint8(c>>(3*(Depth-1-depth))) & 7
}

// Prefix clears every bit below the node at the given depth, giving the smallest code in
// that node.
func (c Code) Prefix(depth int) Code {
	if depth <= 0 {
		return 0
	}
	if depth >= Depth {
		return c
	}
	shift := 3 * (Depth - depth)
	return c >> shift << shift
}

// Parent returns the code of the same cell one level coarser, keeping the code aligned to
// full depth.
func (c Code) Parent(depth int) Code {
	return c.Prefix(depth - 1)
}

// Child returns the first code of the given octant below the node at depth.
func (c Code) Child(depth int, octant uint8) Code {
	return c.Prefix(depth) | Code(octant&7)<<(3*(Depth-1-depth))
}

// Sibling reports whether both codes share the same parent at depth.
func (c Code) Sibling(other Code, depth int) bool {
	return c.Prefix(depth-1) == other.Prefix(depth-1)
}
