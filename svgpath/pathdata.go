package svgpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcwise/pathbool/geom"
)

// PathFromPathData tokenizes an SVG path-data string (the `d` attribute
// grammar) into commands and materializes them into a geom.Path (§6).
func PathFromPathData(d string) (geom.Path, error) {
	cmds, err := tokenizePathData(d)
	if err != nil {
		return nil, err
	}
	return PathFromCommands(cmds)
}

// PathToPathData formats path as an absolute, shorthand-free path-data
// string (§6).
func PathToPathData(path geom.Path, eps float64) string {
	var b strings.Builder
	for _, cmd := range PathToCommands(path, eps) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeCommand(&b, cmd)
	}
	return b.String()
}

func writeCommand(b *strings.Builder, cmd PathCommand) {
	num := formatNum
	switch cmd.Kind {
	case MoveTo:
		fmt.Fprintf(b, "M%s,%s", num(cmd.X), num(cmd.Y))
	case LineTo:
		fmt.Fprintf(b, "L%s,%s", num(cmd.X), num(cmd.Y))
	case QuadTo:
		fmt.Fprintf(b, "Q%s,%s %s,%s", num(cmd.X1), num(cmd.Y1), num(cmd.X), num(cmd.Y))
	case CubicTo:
		fmt.Fprintf(b, "C%s,%s %s,%s %s,%s",
			num(cmd.X1), num(cmd.Y1), num(cmd.X2), num(cmd.Y2), num(cmd.X), num(cmd.Y))
	case ArcTo:
		fmt.Fprintf(b, "A%s,%s %s %d,%d %s,%s",
			num(cmd.RX), num(cmd.RY), num(cmd.PhiDeg), boolFlag(cmd.LargeArc), boolFlag(cmd.Sweep),
			num(cmd.X), num(cmd.Y))
	}
}

func boolFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}

func formatNum(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// tokenizer turns path-data text into a PathCommand slice. The grammar
// (SVG 1.1 §8.3.9) allows commas or whitespace as separators, omitted
// separators between a negative number and what precedes it, and an
// implicit repeat of the previous command letter; moveto's implicit
// repeats decay to lineto (or, for the matching relative case, to
// relative lineto) per the grammar's "drawto-command" note. Arc flags
// (large-arc, sweep) are single 0/1 digits that may run together with no
// separator at all, so they're read as single characters rather than
// through the general number scanner.
type tokenizer struct {
	s   string
	pos int
}

func tokenizePathData(d string) ([]PathCommand, error) {
	t := &tokenizer{s: d}
	var cmds []PathCommand
	var lastLetter byte

	for {
		t.skipSeparators()
		if t.atEnd() {
			break
		}

		c := t.s[t.pos]
		isLetter := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
		if isLetter {
			t.pos++
			lastLetter = c
		} else if lastLetter == 0 {
			return nil, &PathSequenceError{Reason: "path data does not begin with a command letter"}
		} else if lastLetter == 'M' || lastLetter == 'm' {
			// Implicit repeats of a moveto are linetos (SVG 1.1 §8.3.2).
			if lastLetter == 'M' {
				lastLetter = 'L'
			} else {
				lastLetter = 'l'
			}
		} else if lastLetter == 'Z' || lastLetter == 'z' {
			return nil, &PathSequenceError{Reason: "close-path command takes no parameters"}
		}

		rel := lastLetter >= 'a' && lastLetter <= 'z'
		kind := CommandKind(lastLetter - 'a' + 'A')
		if !rel {
			kind = CommandKind(lastLetter)
		}

		cmd := PathCommand{Kind: kind, Rel: rel}
		var err error
		switch kind {
		case ClosePath:
			// no parameters
		case MoveTo, LineTo:
			cmd.X, cmd.Y, err = t.readPoint()
		case HLineTo:
			cmd.X, err = t.readNumber()
		case VLineTo:
			cmd.Y, err = t.readNumber()
		case CubicTo:
			cmd.X1, cmd.Y1, err = t.readPoint()
			if err == nil {
				cmd.X2, cmd.Y2, err = t.readPoint()
			}
			if err == nil {
				cmd.X, cmd.Y, err = t.readPoint()
			}
		case SmoothCubic:
			cmd.X2, cmd.Y2, err = t.readPoint()
			if err == nil {
				cmd.X, cmd.Y, err = t.readPoint()
			}
		case QuadTo:
			cmd.X1, cmd.Y1, err = t.readPoint()
			if err == nil {
				cmd.X, cmd.Y, err = t.readPoint()
			}
		case SmoothQuad:
			cmd.X, cmd.Y, err = t.readPoint()
		case ArcTo:
			cmd.RX, err = t.readNumber()
			if err == nil {
				t.skipSeparators()
				cmd.RY, err = t.readNumber()
			}
			if err == nil {
				t.skipSeparators()
				cmd.PhiDeg, err = t.readNumber()
			}
			if err == nil {
				t.skipSeparators()
				cmd.LargeArc, err = t.readFlag()
			}
			if err == nil {
				t.skipSeparators()
				cmd.Sweep, err = t.readFlag()
			}
			if err == nil {
				cmd.X, cmd.Y, err = t.readPoint()
			}
		default:
			return nil, &PathSequenceError{Reason: fmt.Sprintf("unknown command letter %q", lastLetter)}
		}
		if err != nil {
			return nil, err
		}

		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

func (t *tokenizer) atEnd() bool { return t.pos >= len(t.s) }

func (t *tokenizer) skipSeparators() {
	for t.pos < len(t.s) {
		switch t.s[t.pos] {
		case ' ', '\t', '\n', '\r', ',':
			t.pos++
		default:
			return
		}
	}
}

func (t *tokenizer) readPoint() (x, y float64, err error) {
	x, err = t.readNumber()
	if err != nil {
		return 0, 0, err
	}
	t.skipSeparators()
	y, err = t.readNumber()
	return x, y, err
}

func (t *tokenizer) readNumber() (float64, error) {
	t.skipSeparators()
	start := t.pos
	if t.pos < len(t.s) && (t.s[t.pos] == '+' || t.s[t.pos] == '-') {
		t.pos++
	}
	sawDigit := false
	for t.pos < len(t.s) && isDigit(t.s[t.pos]) {
		t.pos++
		sawDigit = true
	}
	if t.pos < len(t.s) && t.s[t.pos] == '.' {
		t.pos++
		for t.pos < len(t.s) && isDigit(t.s[t.pos]) {
			t.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0, &PathSequenceError{Reason: "expected a number at position " + strconv.Itoa(start)}
	}
	if t.pos < len(t.s) && (t.s[t.pos] == 'e' || t.s[t.pos] == 'E') {
		save := t.pos
		t.pos++
		if t.pos < len(t.s) && (t.s[t.pos] == '+' || t.s[t.pos] == '-') {
			t.pos++
		}
		expDigit := false
		for t.pos < len(t.s) && isDigit(t.s[t.pos]) {
			t.pos++
			expDigit = true
		}
		if !expDigit {
			t.pos = save // not actually an exponent
		}
	}
	v, err := strconv.ParseFloat(t.s[start:t.pos], 64)
	if err != nil {
		return 0, &PathSequenceError{Reason: "malformed number " + strconv.Quote(t.s[start:t.pos])}
	}
	return v, nil
}

// readFlag reads a single SVG arc-flag character (0 or 1) without
// requiring a following separator, matching the grammar's "flag" token.
func (t *tokenizer) readFlag() (bool, error) {
	if t.pos >= len(t.s) {
		return false, &PathSequenceError{Reason: "expected an arc flag"}
	}
	switch t.s[t.pos] {
	case '0':
		t.pos++
		return false, nil
	case '1':
		t.pos++
		return true, nil
	default:
		return false, &PathSequenceError{Reason: "expected an arc flag (0 or 1)"}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
