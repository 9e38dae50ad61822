// Package shape holds the integer geometry passed to drawing calls.
package shape

type Point struct {
	X, Y int32
}

func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle. W and H are expected to be non-negative.
type Rect struct {
	X, Y, W, H int32
}

func NewRect(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromCenter returns the w by h rectangle centered on p.
func FromCenter(p Point, w, h int32) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ContainsPoint reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) HasIntersection(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Polygon is a list of points with no special checking.
type Polygon []Point
