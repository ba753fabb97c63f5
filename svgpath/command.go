// Package svgpath adapts between SVG path-data commands and the core
// geometry package's canonical Segment stream (§6 Adapters). Tokenizing
// path-data strings and resolving relative/shorthand command forms are
// kept out of the core pipeline entirely: this package is the boundary
// that expands M/Z/H/V/S/T and relative coordinates into absolute
// Line/Cubic/Quadratic/Arc segments, and the reverse.
package svgpath

import "github.com/arcwise/pathbool/geom"

// CommandKind is the canonical (always-uppercase) letter of an SVG path
// command. Relative forms (lowercase in path data) are represented by
// the Rel field on PathCommand rather than a separate kind.
type CommandKind byte

const (
	MoveTo      CommandKind = 'M'
	LineTo      CommandKind = 'L'
	HLineTo     CommandKind = 'H'
	VLineTo     CommandKind = 'V'
	CubicTo     CommandKind = 'C'
	SmoothCubic CommandKind = 'S'
	QuadTo      CommandKind = 'Q'
	SmoothQuad  CommandKind = 'T'
	ArcTo       CommandKind = 'A'
	ClosePath   CommandKind = 'Z'
)

// PathCommand is one SVG path-data command, decoded to its canonical
// kind with every field it uses populated (§6 "Adapters"). Rel reports
// whether the original command's coordinates are relative to the
// current point (lowercase letter in path data).
//
// Field usage by Kind:
//   - MoveTo, LineTo, SmoothQuad: X, Y (endpoint)
//   - HLineTo: X only
//   - VLineTo: Y only
//   - CubicTo: X1,Y1 (first control), X2,Y2 (second control), X,Y (endpoint)
//   - SmoothCubic: X2,Y2 (second control, first is reflected), X,Y
//   - QuadTo: X1,Y1 (control), X,Y
//   - ArcTo: RX,RY,PhiDeg,LargeArc,Sweep, X,Y (endpoint)
//   - ClosePath: none
type PathCommand struct {
	Kind CommandKind
	Rel  bool

	X, Y   float64
	X1, Y1 float64
	X2, Y2 float64

	RX, RY   float64
	PhiDeg   float64
	LargeArc bool
	Sweep    bool
}

// PathSequenceError reports a command stream that violates §7's sequence
// rule: the only error kind the core/adapters ever raise. A path must
// begin with a move-to, and a close-path must have an open sub-path.
type PathSequenceError struct {
	Reason string
}

func (e *PathSequenceError) Error() string { return "svgpath: bad path sequence: " + e.Reason }

// PathFromCommands materializes a geom.Path from a command stream,
// resolving relative coordinates, S/T control-point reflection, and
// explicit close-path line segments (§6). Commands are consumed eagerly;
// the source's lazy-generator semantics collapse to this already-realized
// slice without changing the meaning of the stream (§9 "Generator
// semantics").
func PathFromCommands(cmds []PathCommand) (geom.Path, error) {
	var path geom.Path
	var cur, subStart geom.Vector
	haveSubpath := false

	// Tracks the reflected control point for S/T; reset to the current
	// point whenever the previous command wasn't the matching curve kind.
	var prevCtrl geom.Vector
	var prevKind CommandKind

	resolve := func(x, y float64, rel bool) geom.Vector {
		if rel {
			return geom.Vector{X: cur.X + x, Y: cur.Y + y}
		}
		return geom.Vector{X: x, Y: y}
	}

	for _, cmd := range cmds {
		switch cmd.Kind {
		case MoveTo:
			cur = resolve(cmd.X, cmd.Y, cmd.Rel)
			subStart = cur
			haveSubpath = true

		case ClosePath:
			if !haveSubpath {
				return nil, &PathSequenceError{Reason: "close-path with no open sub-path"}
			}
			if cur != subStart {
				path = append(path, geom.Line(cur, subStart))
			}
			cur = subStart

		case LineTo:
			if !haveSubpath {
				return nil, &PathSequenceError{Reason: "path command before initial move-to"}
			}
			p := resolve(cmd.X, cmd.Y, cmd.Rel)
			path = append(path, geom.Line(cur, p))
			cur = p

		case HLineTo:
			if !haveSubpath {
				return nil, &PathSequenceError{Reason: "path command before initial move-to"}
			}
			x := cmd.X
			if cmd.Rel {
				x += cur.X
			}
			p := geom.Vector{X: x, Y: cur.Y}
			path = append(path, geom.Line(cur, p))
			cur = p

		case VLineTo:
			if !haveSubpath {
				return nil, &PathSequenceError{Reason: "path command before initial move-to"}
			}
			y := cmd.Y
			if cmd.Rel {
				y += cur.Y
			}
			p := geom.Vector{X: cur.X, Y: y}
			path = append(path, geom.Line(cur, p))
			cur = p

		case CubicTo, SmoothCubic:
			if !haveSubpath {
				return nil, &PathSequenceError{Reason: "path command before initial move-to"}
			}
			var c1 geom.Vector
			if cmd.Kind == SmoothCubic {
				c1 = reflectControl(cur, prevCtrl, prevKind == CubicTo || prevKind == SmoothCubic)
			} else {
				c1 = resolve(cmd.X1, cmd.Y1, cmd.Rel)
			}
			c2 := resolve(cmd.X2, cmd.Y2, cmd.Rel)
			p := resolve(cmd.X, cmd.Y, cmd.Rel)
			path = append(path, geom.Cubic(cur, c1, c2, p))
			prevCtrl = c2
			cur = p

		case QuadTo, SmoothQuad:
			if !haveSubpath {
				return nil, &PathSequenceError{Reason: "path command before initial move-to"}
			}
			var c geom.Vector
			if cmd.Kind == SmoothQuad {
				c = reflectControl(cur, prevCtrl, prevKind == QuadTo || prevKind == SmoothQuad)
			} else {
				c = resolve(cmd.X1, cmd.Y1, cmd.Rel)
			}
			p := resolve(cmd.X, cmd.Y, cmd.Rel)
			path = append(path, geom.Quadratic(cur, c, p))
			prevCtrl = c
			cur = p

		case ArcTo:
			if !haveSubpath {
				return nil, &PathSequenceError{Reason: "path command before initial move-to"}
			}
			p := resolve(cmd.X, cmd.Y, cmd.Rel)
			path = append(path, geom.Arc(cur, cmd.RX, cmd.RY, cmd.PhiDeg, cmd.LargeArc, cmd.Sweep, p))
			cur = p
		}

		prevKind = cmd.Kind
	}

	return path, nil
}

// reflectControl returns the control point to use for a smooth (S/T)
// command: the current point's reflection of the previous control point
// across it, or the current point itself if the previous command wasn't
// a curve of the matching family.
func reflectControl(cur, prevCtrl geom.Vector, chain bool) geom.Vector {
	if !chain {
		return cur
	}
	return geom.Vector{X: 2*cur.X - prevCtrl.X, Y: 2*cur.Y - prevCtrl.Y}
}

// PathToCommands converts path into an absolute, shorthand-free command
// stream, inserting a MoveTo wherever consecutive segments' joint points
// differ by more than eps (§6: the sole mechanism by which sub-path
// boundaries are recovered from a flat segment list).
func PathToCommands(path geom.Path, eps float64) []PathCommand {
	var cmds []PathCommand
	var cur geom.Vector
	first := true

	for _, seg := range path {
		if first || !approxEqual(cur, seg.P0, eps) {
			cmds = append(cmds, PathCommand{Kind: MoveTo, X: seg.P0.X, Y: seg.P0.Y})
			first = false
		}
		switch seg.Kind {
		case geom.KindLine:
			cmds = append(cmds, PathCommand{Kind: LineTo, X: seg.P1.X, Y: seg.P1.Y})
		case geom.KindQuadratic:
			cmds = append(cmds, PathCommand{Kind: QuadTo, X1: seg.C1.X, Y1: seg.C1.Y, X: seg.P1.X, Y: seg.P1.Y})
		case geom.KindCubic:
			cmds = append(cmds, PathCommand{
				Kind: CubicTo,
				X1:   seg.C1.X, Y1: seg.C1.Y,
				X2: seg.C2.X, Y2: seg.C2.Y,
				X: seg.P1.X, Y: seg.P1.Y,
			})
		case geom.KindArc:
			cmds = append(cmds, PathCommand{
				Kind: ArcTo,
				RX:   seg.RX, RY: seg.RY, PhiDeg: seg.PhiDeg,
				LargeArc: seg.LargeArc, Sweep: seg.Sweep,
				X: seg.P1.X, Y: seg.P1.Y,
			})
		}
		cur = seg.P1
	}

	return cmds
}

func approxEqual(a, b geom.Vector, eps float64) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= eps && dy <= eps
}
