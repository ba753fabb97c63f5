// Package pathjson marshals and unmarshals geom.Path values to the
// segment wire format of §6 ("L"/"C"/"Q"/"A" tuples), playing the same
// adapter role the teacher's geojson package plays for S2 regions:
// translate a decoded wire representation into the package's native
// geometry and back, with no knowledge of transport (HTTP, files, …).
package pathjson

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/arcwise/pathbool/geom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// segmentWire mirrors one tuple of §6's segment wire format. Point is
// [x, y]; unused fields for a given Type are omitted on encode and
// ignored on decode.
type segmentWire struct {
	Type string     `json:"type"`
	P0   [2]float64 `json:"p0"`
	P1   [2]float64 `json:"p1"`

	C1 *[2]float64 `json:"c1,omitempty"`
	C2 *[2]float64 `json:"c2,omitempty"`

	RX       float64 `json:"rx,omitempty"`
	RY       float64 `json:"ry,omitempty"`
	PhiDeg   float64 `json:"phiDeg,omitempty"`
	LargeArc bool    `json:"largeArc,omitempty"`
	Sweep    bool    `json:"sweep,omitempty"`
}

func vec(p geom.Vector) [2]float64 { return [2]float64{p.X, p.Y} }

func unvec(p [2]float64) geom.Vector { return geom.Vector{X: p[0], Y: p[1]} }

// MarshalPath encodes path as a JSON array of wire-format segment tuples.
func MarshalPath(path geom.Path) ([]byte, error) {
	wire := make([]segmentWire, len(path))
	for i, seg := range path {
		w := segmentWire{P0: vec(seg.P0), P1: vec(seg.P1)}
		switch seg.Kind {
		case geom.KindLine:
			w.Type = "L"
		case geom.KindQuadratic:
			w.Type = "Q"
			c1 := vec(seg.C1)
			w.C1 = &c1
		case geom.KindCubic:
			w.Type = "C"
			c1, c2 := vec(seg.C1), vec(seg.C2)
			w.C1, w.C2 = &c1, &c2
		case geom.KindArc:
			w.Type = "A"
			w.RX, w.RY, w.PhiDeg = seg.RX, seg.RY, seg.PhiDeg
			w.LargeArc, w.Sweep = seg.LargeArc, seg.Sweep
		default:
			return nil, fmt.Errorf("pathjson: unknown segment kind %d", seg.Kind)
		}
		wire[i] = w
	}
	return json.Marshal(wire)
}

// UnmarshalPath decodes a JSON array of wire-format segment tuples into a
// geom.Path.
func UnmarshalPath(data []byte) (geom.Path, error) {
	var wire []segmentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	path := make(geom.Path, len(wire))
	for i, w := range wire {
		p0, p1 := unvec(w.P0), unvec(w.P1)
		switch w.Type {
		case "L":
			path[i] = geom.Line(p0, p1)
		case "Q":
			if w.C1 == nil {
				return nil, fmt.Errorf("pathjson: quadratic segment %d missing c1", i)
			}
			path[i] = geom.Quadratic(p0, unvec(*w.C1), p1)
		case "C":
			if w.C1 == nil || w.C2 == nil {
				return nil, fmt.Errorf("pathjson: cubic segment %d missing control point", i)
			}
			path[i] = geom.Cubic(p0, unvec(*w.C1), unvec(*w.C2), p1)
		case "A":
			path[i] = geom.Arc(p0, w.RX, w.RY, w.PhiDeg, w.LargeArc, w.Sweep, p1)
		default:
			return nil, fmt.Errorf("pathjson: unknown segment type %q at index %d", w.Type, i)
		}
	}
	return path, nil
}
