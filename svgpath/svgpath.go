// Package svgpath parses SVG path-data strings (the "d" attribute grammar)
// into an ink.Path, building it with ink.PathBuilder. It extends the
// M/L/Q/C/Z-only notation of nanachi's path_data_notation to the full SVG
// command set: H/V, S/T reflected-control shorthand, A elliptical arcs, and
// both absolute and relative forms of every command.
package svgpath

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gopherink/ink"
)

// ParseError reports a malformed path-data string, with the byte offset
// where parsing failed.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("svgpath: %s (at offset %d)", e.Message, e.Offset)
}

// Parse parses an SVG path-data string into an ink.Path.
func Parse(d string) (ink.Path, error) {
	p := &parser{src: d, builder: ink.NewPathBuilder()}
	if err := p.run(); err != nil {
		return ink.Path{}, err
	}
	return p.builder.End(), nil
}

type parser struct {
	src     string
	pos     int
	builder *ink.PathBuilder

	startX, startY float64
	curX, curY     float64

	lastQControl ink.Point
	haveLastQ    bool
	lastCControl ink.Point
	haveLastC    bool
}

func (p *parser) errf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) run() error {
	p.skipSeparators()
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if !isCommandLetter(c) {
			return p.errf("expected command letter, found %q", c)
		}
		p.pos++
		if err := p.runCommand(c); err != nil {
			return err
		}
		p.skipSeparators()
	}
	return nil
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	default:
		return false
	}
}

// runCommand consumes every argument set following a command letter: SVG
// path data lets a command repeat implicitly by just listing more numbers,
// so each branch loops until the next token isn't a number (or, for M/m,
// treats subsequent implicit repeats as L/l, per the SVG path-data grammar).
func (p *parser) runCommand(cmd byte) error {
	switch cmd {
	case 'Z', 'z':
		p.closePath()
		return nil
	case 'M', 'm':
		return p.runMoveTo(cmd)
	case 'L', 'l':
		return p.runRepeating(cmd, 2, p.doLineTo)
	case 'H', 'h':
		return p.runRepeating(cmd, 1, p.doHLineTo)
	case 'V', 'v':
		return p.runRepeating(cmd, 1, p.doVLineTo)
	case 'C', 'c':
		return p.runRepeating(cmd, 6, p.doCubicTo)
	case 'S', 's':
		return p.runRepeating(cmd, 4, p.doSmoothCubicTo)
	case 'Q', 'q':
		return p.runRepeating(cmd, 4, p.doQuadTo)
	case 'T', 't':
		return p.runRepeating(cmd, 2, p.doSmoothQuadTo)
	case 'A', 'a':
		return p.runArc(cmd)
	default:
		return p.errf("unsupported command %q", cmd)
	}
}

func (p *parser) runMoveTo(cmd byte) error {
	ns, err := p.numbers(2)
	if err != nil {
		return err
	}
	p.doMoveTo(cmd, ns)
	// Subsequent coordinate pairs after the first are implicit LineTo.
	lineCmd := byte('L')
	if cmd == 'm' {
		lineCmd = 'l'
	}
	p.skipSeparators()
	if p.pos >= len(p.src) || isCommandLetter(p.src[p.pos]) {
		return nil
	}
	return p.runRepeating(lineCmd, 2, p.doLineTo)
}

// runRepeating consumes one argument set of n numbers, applies fn, then
// keeps consuming further n-number sets for as long as the input has more
// numbers (SVG's implicit command repetition), stopping at the next
// command letter or end of input.
func (p *parser) runRepeating(cmd byte, n int, fn func(cmd byte, ns []float64)) error {
	for {
		ns, err := p.numbers(n)
		if err != nil {
			return err
		}
		fn(cmd, ns)
		p.skipSeparators()
		if p.pos >= len(p.src) || isCommandLetter(p.src[p.pos]) {
			return nil
		}
	}
}

func (p *parser) runArc(cmd byte) error {
	for {
		p.skipSeparators()
		if p.pos >= len(p.src) || isCommandLetter(p.src[p.pos]) {
			return nil
		}
		rx, err := p.number()
		if err != nil {
			return err
		}
		ry, err := p.number()
		if err != nil {
			return err
		}
		rot, err := p.number()
		if err != nil {
			return err
		}
		large, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		x, err := p.number()
		if err != nil {
			return err
		}
		y, err := p.number()
		if err != nil {
			return err
		}
		p.doArcTo(cmd, rx, ry, rot, large, sweep, x, y)
	}
}

func (p *parser) resolve(cmd byte, x, y float64) (float64, float64) {
	if isLower(cmd) {
		return p.curX + x, p.curY + y
	}
	return x, y
}

func isLower(cmd byte) bool { return cmd >= 'a' && cmd <= 'z' }

func (p *parser) doMoveTo(cmd byte, ns []float64) {
	x, y := p.resolve(cmd, ns[0], ns[1])
	p.builder.MoveTo(x, y)
	p.curX, p.curY = x, y
	p.startX, p.startY = x, y
	p.haveLastQ, p.haveLastC = false, false
}

func (p *parser) doLineTo(cmd byte, ns []float64) {
	x, y := p.resolve(cmd, ns[0], ns[1])
	p.builder.LineTo(x, y)
	p.curX, p.curY = x, y
	p.haveLastQ, p.haveLastC = false, false
}

func (p *parser) doHLineTo(cmd byte, ns []float64) {
	x := ns[0]
	if isLower(cmd) {
		x += p.curX
	}
	p.builder.LineTo(x, p.curY)
	p.curX = x
	p.haveLastQ, p.haveLastC = false, false
}

func (p *parser) doVLineTo(cmd byte, ns []float64) {
	y := ns[0]
	if isLower(cmd) {
		y += p.curY
	}
	p.builder.LineTo(p.curX, y)
	p.curY = y
	p.haveLastQ, p.haveLastC = false, false
}

func (p *parser) doCubicTo(cmd byte, ns []float64) {
	c1x, c1y := p.resolve(cmd, ns[0], ns[1])
	c2x, c2y := p.resolve(cmd, ns[2], ns[3])
	x, y := p.resolve(cmd, ns[4], ns[5])
	p.builder.CubicTo(c1x, c1y, c2x, c2y, x, y)
	p.curX, p.curY = x, y
	p.lastCControl = ink.Pt(c2x, c2y)
	p.haveLastC = true
	p.haveLastQ = false
}

func (p *parser) doSmoothCubicTo(cmd byte, ns []float64) {
	c1 := p.reflectedControl(p.haveLastC, p.lastCControl)
	c2x, c2y := p.resolve(cmd, ns[0], ns[1])
	x, y := p.resolve(cmd, ns[2], ns[3])
	p.builder.CubicTo(c1.X, c1.Y, c2x, c2y, x, y)
	p.curX, p.curY = x, y
	p.lastCControl = ink.Pt(c2x, c2y)
	p.haveLastC = true
	p.haveLastQ = false
}

func (p *parser) doQuadTo(cmd byte, ns []float64) {
	cx, cy := p.resolve(cmd, ns[0], ns[1])
	x, y := p.resolve(cmd, ns[2], ns[3])
	p.builder.QuadTo(cx, cy, x, y)
	p.curX, p.curY = x, y
	p.lastQControl = ink.Pt(cx, cy)
	p.haveLastQ = true
	p.haveLastC = false
}

func (p *parser) doSmoothQuadTo(cmd byte, ns []float64) {
	c := p.reflectedControl(p.haveLastQ, p.lastQControl)
	x, y := p.resolve(cmd, ns[0], ns[1])
	p.builder.QuadTo(c.X, c.Y, x, y)
	p.curX, p.curY = x, y
	p.lastQControl = c
	p.haveLastQ = true
	p.haveLastC = false
}

// reflectedControl mirrors the previous command's control point through the
// current point, as S/T require; a current point with no preceding
// matching C/Q/S/T reflects to itself (the SVG spec's "coincident with
// current point" fallback).
func (p *parser) reflectedControl(have bool, last ink.Point) ink.Point {
	cur := ink.Pt(p.curX, p.curY)
	if !have {
		return cur
	}
	return cur.Add(cur.Sub(last))
}

func (p *parser) doArcTo(cmd byte, rx, ry, rotationDeg float64, largeArc, sweep bool, ex, ey float64) {
	x, y := p.resolve(cmd, ex, ey)
	p.haveLastQ, p.haveLastC = false, false
	startX, startY := p.curX, p.curY
	p.curX, p.curY = x, y

	if rx == 0 || ry == 0 {
		p.builder.LineTo(x, y)
		return
	}
	rotation := rotationDeg * math.Pi / 180
	center, rxa, rya, angle1, angle2, ok := endpointToCenter(startX, startY, x, y, math.Abs(rx), math.Abs(ry), rotation, largeArc, sweep)
	if !ok {
		p.builder.LineTo(x, y)
		return
	}
	p.builder.EllipseTo(center.X, center.Y, rxa, rya, rotation, angle1, angle2)
}

func (p *parser) closePath() {
	p.builder.Close()
	p.curX, p.curY = p.startX, p.startY
	p.haveLastQ, p.haveLastC = false, false
}

// endpointToCenter converts SVG's arc endpoint parameterization (F.6.5 of
// the SVG spec) to center parameterization. Returns ok=false when the
// corrected radii still can't reach between the endpoints (a degenerate
// case this package treats as "fall back to a line", per the total-function
// contract the rest of this module follows).
func endpointToCenter(x1, y1, x2, y2, rx, ry, rotation float64, largeArc, sweep bool) (center ink.Point, rxOut, ryOut, angle1, angle2 float64, ok bool) {
	sin, cos := math.Sincos(rotation)
	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := cos*dx2 + sin*dy2
	y1p := -sin*dx2 + cos*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}
	if rx == 0 || ry == 0 {
		return ink.Point{}, 0, 0, 0, 0, false
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * (-ry * x1p / rx)

	cx := cos*cxp - sin*cyp + (x1+x2)/2
	cy := sin*cxp + cos*cyp + (y1+y2)/2

	angleOf := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		length := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		if length == 0 {
			return 0
		}
		a := math.Acos(clampUnitInterval(dot / length))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angleOf(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angleOf((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	return ink.Pt(cx, cy), rx, ry, theta1, theta1 + dtheta, true
}

func clampUnitInterval(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			p.pos++
			continue
		}
		break
	}
}

func (p *parser) numbers(n int) ([]float64, error) {
	ns := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		ns[i] = v
	}
	return ns, nil
}

// number scans one SVG number token: optional sign, digits, optional
// fractional part, optional exponent. Separators (commas/whitespace) before
// the token are skipped; none are required between a preceding token and
// this one, matching SVG's lenient adjacency rules: "-10-20" scans as -10
// and -20, and "1.5.5" as 1.5 and .5, since a second '.' ends the token.
func (p *parser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
		p.pos++
	}
	digitsBefore := p.consumeDigits()
	hasFraction := false
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		hasFraction = true
		p.pos++
		p.consumeDigits()
	}
	if digitsBefore == 0 && !hasFraction {
		return 0, p.errf("expected a number")
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		save := p.pos
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.consumeDigits() == 0 {
			p.pos = save
		}
	}
	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, p.errf("invalid number %q", text)
	}
	return v, nil
}

func (p *parser) consumeDigits() int {
	n := 0
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}

// flag scans a single SVG arc flag: '0' or '1', with no separator required
// before the next token (arc flags are often written glued together, e.g.
// "A1 1 0 0115 10").
func (p *parser) flag() (bool, error) {
	p.skipSeparators()
	if p.pos >= len(p.src) {
		return false, p.errf("expected flag (0 or 1)")
	}
	c := p.src[p.pos]
	if c != '0' && c != '1' {
		return false, p.errf("expected flag (0 or 1), found %q", c)
	}
	p.pos++
	return c == '1', nil
}
