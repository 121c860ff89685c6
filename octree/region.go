package octree

import (
	"encoding/binary"
	"encoding/json"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/space/morton"
)

// Levels outside of [MinLevel, MaxLevel] cannot be expressed as float64 bounds: both 2^level
// and 2^(level+1) must be finite normal numbers for discretization to be exact.
const (
	MinLevel = -1022
	MaxLevel = 1022
)

// ErrLevelOutOfRange is returned when a region level has no exact float64 bound.
var ErrLevelOutOfRange = errors.New("region level out of range")

func checkLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return errors.Wrapf(ErrLevelOutOfRange, "level %d not in [%d, %d]", level, MinLevel, MaxLevel)
	}
	return nil
}

// LeveledRegion is the cube [-2^level, 2^level) on every axis, centered on the origin.
//
// Discretize rejects a point only when a coordinate's magnitude is strictly greater than the
// bound, so a coordinate of exactly +2^level is accepted even though the interval is nominally
// open at the top. Such coordinates land in the last cell along that axis.
type LeveledRegion struct {
	level int
}

// NewLeveledRegion returns the region of the given level.
func NewLeveledRegion(level int) (LeveledRegion, error) {
	if err := checkLevel(level); err != nil {
		return LeveledRegion{}, err
	}
	return LeveledRegion{level: level}, nil
}

// Level returns the region's level.
func (r LeveledRegion) Level() int {
	return r.level
}

// Bound returns 2^level, the half side length of the region.
func (r LeveledRegion) Bound() float64 {
	return math.Ldexp(1, r.level)
}

// Discretize returns the Morton code of the leaf cell holding p, or false if p is outside
// of the region.
func (r LeveledRegion) Discretize(p r3.Vector) (morton.Code, bool) {
	bound := r.Bound()
	// Written as a negated <= so that NaN coordinates are rejected too.
	if !(math.Abs(p.X) <= bound && math.Abs(p.Y) <= bound && math.Abs(p.Z) <= bound) {
		return 0, false
	}
	side := math.Ldexp(1, r.level+1)
	return morton.FromUnit(r3.Vector{
		X: (p.X + bound) / side,
		Y: (p.Y + bound) / side,
		Z: (p.Z + bound) / side,
	}), true
}

// MarshalJSON encodes the region as {"level": n}.
func (r LeveledRegion) MarshalJSON() ([]byte, error) {
	return json.Marshal(leveledRegionJSON{Level: &r.level})
}

// UnmarshalJSON decodes {"level": n}, rejecting levels out of range.
func (r *LeveledRegion) UnmarshalJSON(data []byte) error {
	var raw leveledRegionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "error unmarshaling leveled region")
	}
	if raw.Level == nil {
		return errors.New("error unmarshaling leveled region: missing level")
	}
	region, err := NewLeveledRegion(*raw.Level)
	if err != nil {
		return err
	}
	*r = region
	return nil
}

const leveledRegionBinarySize = 4

// MarshalBinary encodes the level as a little endian int32.
func (r LeveledRegion) MarshalBinary() ([]byte, error) {
	data := make([]byte, leveledRegionBinarySize)
	binary.LittleEndian.PutUint32(data, uint32(int32(r.level)))
	return data, nil
}

// UnmarshalBinary decodes a region written by MarshalBinary.
func (r *LeveledRegion) UnmarshalBinary(data []byte) error {
	if len(data) != leveledRegionBinarySize {
		return errors.Errorf("error unmarshaling leveled region invalid packet size (%d)", len(data))
	}
	region, err := NewLeveledRegion(int(int32(binary.LittleEndian.Uint32(data))))
	if err != nil {
		return err
	}
	*r = region
	return nil
}

type leveledRegionJSON struct {
	Level *int `json:"level"`
}

// CenteredLeveledRegion is a LeveledRegion shifted to center, the cube
// [center - 2^level, center + 2^level) on every axis. It starts out at some guess of the
// space its owner needs and grows one level at a time with Expand; it never shrinks.
//
// A CenteredLeveledRegion is not safe for concurrent mutation.
type CenteredLeveledRegion struct {
	region LeveledRegion
	center r3.Vector
}

// NewCenteredLeveledRegion returns the region of the given level around center.
func NewCenteredLeveledRegion(level int, center r3.Vector) (CenteredLeveledRegion, error) {
	region, err := NewLeveledRegion(level)
	if err != nil {
		return CenteredLeveledRegion{}, err
	}
	if !isFinite(center) {
		return CenteredLeveledRegion{}, errors.Errorf("invalid region center %v", center)
	}
	return CenteredLeveledRegion{region: region, center: center}, nil
}

// Region returns the region before it is shifted by the center.
func (c CenteredLeveledRegion) Region() LeveledRegion {
	return c.region
}

// Level returns the region's level.
func (c CenteredLeveledRegion) Level() int {
	return c.region.level
}

// Center returns the region's center.
func (c CenteredLeveledRegion) Center() r3.Vector {
	return c.center
}

// Bounds returns the corners of the region.
func (c CenteredLeveledRegion) Bounds() Bounds {
	r := c.region.Bound()
	radius := r3.Vector{X: r, Y: r, Z: r}
	return Bounds{Min: c.center.Sub(radius), Max: c.center.Add(radius)}
}

// Discretize returns the Morton code of p relative to the region, or false if p is outside
// of it. The boundary rules are those of LeveledRegion.Discretize.
func (c CenteredLeveledRegion) Discretize(p r3.Vector) (morton.Code, bool) {
	return c.region.Discretize(p.Sub(c.center))
}

// ExpandLoc returns the octant the current contents of the region should move into when the
// region grows toward p, or false if p is already inside [center - 2^level, center + 2^level).
//
// Bit i of the octant (x=0, y=1, z=2) is set when the existing contents end up in the positive
// half of the grown region along that axis, which is the case when p lies below the region or,
// for an axis where p is within the region, when p is below the center.
func (c CenteredLeveledRegion) ExpandLoc(p r3.Vector) (uint8, bool) {
	bounds := c.Bounds()
	lower, upper := axes(bounds.Min), axes(bounds.Max)
	point, center := axes(p), axes(c.center)

	inside := true
	var octant uint8
	for i := range point {
		switch {
		case point[i] < lower[i]:
			octant |= 1 << i
			inside = false
		case point[i] >= upper[i]:
			inside = false
		case point[i] < center[i]:
			octant |= 1 << i
		}
	}
	if inside {
		return 0, false
	}
	return octant, true
}

// towardOctant returns the octant with bit i set where p is below the center along axis i.
func (c CenteredLeveledRegion) towardOctant(p r3.Vector) uint8 {
	point, center := axes(p), axes(c.center)
	var octant uint8
	for i := range point {
		if point[i] < center[i] {
			octant |= 1 << i
		}
	}
	return octant
}

// Expand grows the region by one level, keeping its current contents in the given octant of
// the grown region. The center moves by the old bound along every axis: down where the
// octant's bit is set and up where it is clear.
//
// Expand is a single step. Owners that need to fit a point keep calling ExpandLoc and Expand
// until Discretize accepts it.
func (c *CenteredLeveledRegion) Expand(octant uint8) error {
	if err := checkLevel(c.region.level + 1); err != nil {
		return errors.Wrap(err, "cannot expand region")
	}
	bound := c.region.Bound()
	shift := [3]float64{bound, bound, bound}
	for i := range shift {
		if octant&(1<<i) != 0 {
			shift[i] = -bound
		}
	}
	c.center = c.center.Add(r3.Vector{X: shift[0], Y: shift[1], Z: shift[2]})
	c.region.level++
	return nil
}

type centeredLeveledRegionJSON struct {
	Region *LeveledRegion `json:"region"`
	Center []float64      `json:"center"`
}

// MarshalJSON encodes the region as {"region": {"level": n}, "center": [x, y, z]}.
func (c CenteredLeveledRegion) MarshalJSON() ([]byte, error) {
	center := axes(c.center)
	return json.Marshal(centeredLeveledRegionJSON{Region: &c.region, Center: center[:]})
}

// UnmarshalJSON decodes a region written by MarshalJSON.
func (c *CenteredLeveledRegion) UnmarshalJSON(data []byte) error {
	var raw centeredLeveledRegionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "error unmarshaling centered leveled region")
	}
	if raw.Region == nil {
		return errors.New("error unmarshaling centered leveled region: missing region")
	}
	if len(raw.Center) != 3 {
		return errors.Errorf("error unmarshaling centered leveled region: center has %d coordinates", len(raw.Center))
	}
	region, err := NewCenteredLeveledRegion(raw.Region.level, r3.Vector{X: raw.Center[0], Y: raw.Center[1], Z: raw.Center[2]})
	if err != nil {
		return err
	}
	*c = region
	return nil
}

const centeredLeveledRegionBinarySize = leveledRegionBinarySize + 3*8

// MarshalBinary encodes the level as a little endian int32 followed by the center as three
// little endian float64s.
func (c CenteredLeveledRegion) MarshalBinary() ([]byte, error) {
	data, err := c.region.MarshalBinary()
	if err != nil {
		return nil, err
	}
	for _, v := range axes(c.center) {
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
	}
	return data, nil
}

// UnmarshalBinary decodes a region written by MarshalBinary.
func (c *CenteredLeveledRegion) UnmarshalBinary(data []byte) error {
	if len(data) != centeredLeveledRegionBinarySize {
		return errors.Errorf("error unmarshaling centered leveled region invalid packet size (%d)", len(data))
	}
	var region LeveledRegion
	if err := region.UnmarshalBinary(data[:leveledRegionBinarySize]); err != nil {
		return err
	}
	var center [3]float64
	for i := range center {
		off := leveledRegionBinarySize + 8*i
		center[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+8]))
	}
	decoded, err := NewCenteredLeveledRegion(region.level, fromAxes(center))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

func axes(v r3.Vector) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func fromAxes(a [3]float64) r3.Vector {
	return r3.Vector{X: a[0], Y: a[1], Z: a[2]}
}

func isFinite(v r3.Vector) bool {
	for _, a := range axes(v) {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return false
		}
	}
	return true
}
