package morton

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestEncodeDecode(t *testing.T) {
	test.That(t, Encode(0, 0, 0), test.ShouldEqual, Code(0))
	test.That(t, Encode(1, 0, 0), test.ShouldEqual, Code(1))
	test.That(t, Encode(0, 1, 0), test.ShouldEqual, Code(2))
	test.That(t, Encode(0, 0, 1), test.ShouldEqual, Code(4))
	test.That(t, Encode(1, 1, 1), test.ShouldEqual, Code(7))
	test.That(t, Encode(2, 0, 0), test.ShouldEqual, Code(8))
	test.That(t, Encode(axisMask, axisMask, axisMask), test.ShouldEqual, Max)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		x, y, z := uint32(r.Intn(cellsPerAxis)), uint32(r.Intn(cellsPerAxis)), uint32(r.Intn(cellsPerAxis))
		gx, gy, gz := Encode(x, y, z).Decode()
		test.That(t, gx, test.ShouldEqual, x)
		test.That(t, gy, test.ShouldEqual, y)
		test.That(t, gz, test.ShouldEqual, z)
	}
}

func TestFromUnit(t *testing.T) {
	test.That(t, FromUnit(r3.Vector{}), test.ShouldEqual, Code(0))
	test.That(t, FromUnit(r3.Vector{X: 1, Y: 1, Z: 1}), test.ShouldEqual, Max)
	test.That(t, FromUnit(r3.Vector{X: 0.999999999, Y: 1, Z: 1}), test.ShouldEqual, Max)
	test.That(t, FromUnit(r3.Vector{X: -0.1, Y: 0, Z: 0}), test.ShouldEqual, Code(0))

	// The upper half of x is the positive octant at the root.
	c := FromUnit(r3.Vector{X: 0.75, Y: 0.25, Z: 0.25})
	test.That(t, c.Octant(0), test.ShouldEqual, uint8(1))
	c = FromUnit(r3.Vector{X: 0.25, Y: 0.75, Z: 0.75})
	test.That(t, c.Octant(0), test.ShouldEqual, uint8(6))

	unit := FromUnit(r3.Vector{X: 0.5, Y: 0.25, Z: 0.125}).Unit()
	test.That(t, unit, test.ShouldResemble, r3.Vector{X: 0.5, Y: 0.25, Z: 0.125})
}

func TestOrderingGroupsNodes(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	codes := make([]Code, 200)
	for i := range codes {
		codes[i] = FromUnit(r3.Vector{X: r.Float64(), Y: r.Float64(), Z: r.Float64()})
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	// Octants at every depth never decrease within a run that shares the parent prefix.
	for depth := 0; depth < 3; depth++ {
		for i := 1; i < len(codes); i++ {
			if codes[i].Prefix(depth) == codes[i-1].Prefix(depth) {
				test.That(t, codes[i].Octant(depth), test.ShouldBeGreaterThanOrEqualTo, codes[i-1].Octant(depth))
			}
		}
	}
}

func TestDerivations(t *testing.T) {
	c := Encode(5, 3, 6)

	test.That(t, c.Prefix(0), test.ShouldEqual, Code(0))
	test.That(t, c.Prefix(Depth), test.ShouldEqual, c)
	test.That(t, c.Prefix(Depth-1), test.ShouldEqual, c&^7)
	test.That(t, c.Parent(Depth), test.ShouldEqual, c&^7)

	test.That(t, c.Octant(Depth-1), test.ShouldEqual, uint8(c&7))

	child := c.Child(Depth-1, 3)
	test.That(t, child.Octant(Depth-1), test.ShouldEqual, uint8(3))
	test.That(t, child.Sibling(c, Depth), test.ShouldBeTrue)
	test.That(t, child.Sibling(c.Child(Depth-2, 0), Depth-1), test.ShouldBeTrue)
	test.That(t, Encode(0, 0, 0).Sibling(Encode(axisMask, 0, 0), 1), test.ShouldBeTrue)
	test.That(t, Encode(0, 0, 0).Sibling(Encode(axisMask, 0, 0), 2), test.ShouldBeFalse)
}
