package pflow

import "github.com/katalvlaran/fastflow/core"

// Plane is a non-output vertex's measurement-plane assignment
// (SPEC_FULL.md §3). The numeric tags mirror the teacher's enum-as-u8
// convention and original_source/src/pflow.rs's PPlane repr(u8).
type Plane uint8

const (
	XY Plane = iota
	YZ
	ZX
	X
	Y
	Z
)

func (p Plane) String() string {
	switch p {
	case XY:
		return "XY"
	case YZ:
		return "YZ"
	case ZX:
		return "ZX"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "Plane(?)"
	}
}

// PlaneAssignment is the partial mapping Ō → Plane the driver consumes.
type PlaneAssignment map[int]Plane

// ySet, xySet and yzSet derive the three plane-family node sets the
// initial row/column seeding needs, matching
// original_source/src/pflow.rs's literal yset/xyset/yzset (lines
// 329-331): Y-set is exactly the Y-measured vertices; xySet is the bare
// Pauli tags {X, Y} (NOT the compound XY rotation plane); yzSet is the
// bare Pauli tags {Y, Z} (NOT the compound YZ rotation plane). The
// compound XY/YZ/ZX rotation planes never widen these seed sets — only
// X, Y, Z do.
func ySet(n int, pp PlaneAssignment) *core.NodeSet {
	s := core.NewNodeSet(n)
	for v, p := range pp {
		if p == Y {
			s.Insert(v)
		}
	}
	return s
}

func xySet(n int, pp PlaneAssignment) *core.NodeSet {
	s := core.NewNodeSet(n)
	for v, p := range pp {
		if p == X || p == Y {
			s.Insert(v)
		}
	}
	return s
}

func yzSet(n int, pp PlaneAssignment) *core.NodeSet {
	s := core.NewNodeSet(n)
	for v, p := range pp {
		if p == Y || p == Z {
			s.Insert(v)
		}
	}
	return s
}
