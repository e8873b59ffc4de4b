// Package curve implements the elliptic curve y² = x³ + 2x + 26z⁵ over
// F_{p⁷}.
//
// The curve exists to compress cross-table interactions: every
// interaction message is lifted to a point, and a table's contribution
// to the global argument is the sum of its points. The group law is the
// plain affine Weierstrass one; trace generation arranges its running
// sums so the incomplete formulas never hit an edge case, and Add covers
// the complete law for everything else.
package curve

import (
	"github.com/consensys/septic/babybear"
	"github.com/consensys/septic/fp7"
)

// Point is an affine point. The zero value (0, 0) doubles as the point
// at infinity; it is unambiguous because the curve has no point with
// y = 0 at x = 0.
type Point struct {
	X, Y fp7.E7
}

var (
	// bCurve is the constant term 26z⁵ of the curve equation.
	bCurve = fp7.FromCanonicalU32s([7]uint32{0, 0, 0, 0, 0, 26, 0})

	three = babybear.FromCanonicalU32(3)

	// The padding point for unconstrained rows, derived from the digits
	// of e.
	dummyX = fp7.FromCanonicalU32s([7]uint32{0x2738281, 0x8284590, 0x4523536, 0x0287471, 0x3526624, 0x9775724, 0x7093699})
	dummyY = fp7.FromCanonicalU32s([7]uint32{48041908, 550064556, 415267377, 1726976249, 1253299140, 209439863, 1302309485})
)

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// Dummy returns the fixed padding point used for unconstrained rows.
func Dummy() Point {
	return Point{X: dummyX, Y: dummyY}
}

// CurveFormula evaluates the right-hand side x³ + 2x + 26z⁵ of the
// curve equation.
func CurveFormula(x fp7.E7) fp7.E7 {
	return x.Cube().Add(x.Double()).Add(bCurve)
}

// IsOnCurve reports whether p satisfies the curve equation. The
// infinity sentinel does not.
func (p Point) IsOnCurve() bool {
	return p.Y.Square().Equal(CurveFormula(p.X))
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Equal reports whether p == q.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Neg returns -p, the reflection across the x axis.
func (p Point) Neg() Point {
	return Point{X: p.X, Y: p.Y.Neg()}
}

// Add returns p + q under the complete group law.
func (p Point) Add(q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if !p.X.Equal(q.X) {
		return p.AddIncomplete(q)
	}
	if p.Y.Equal(q.Y) {
		return p.Double()
	}
	return Infinity()
}

// Sub returns p - q under the complete group law.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// AddIncomplete returns p + q by the chord rule. p and q must be affine
// points with distinct x coordinates; Add handles the edge cases.
func (p Point) AddIncomplete(q Point) Point {
	slope := q.Y.Sub(p.Y).Div(q.X.Sub(p.X))
	x := slope.Square().Sub(p.X).Sub(q.X)
	y := slope.Mul(p.X.Sub(x)).Sub(p.Y)
	return Point{X: x, Y: y}
}

// SubIncomplete returns p - q by the chord rule, with the same
// preconditions as AddIncomplete.
func (p Point) SubIncomplete(q Point) Point {
	return p.AddIncomplete(q.Neg())
}

// Double returns 2p by the tangent rule. p must be an affine point with
// a nonzero y coordinate.
func (p Point) Double() Point {
	slope := p.X.Square().MulByBase(three).Add(fp7.Two()).Div(p.Y.Double())
	x := slope.Square().Sub(p.X.Double())
	y := slope.Mul(p.X.Sub(x)).Sub(p.Y)
	return Point{X: x, Y: y}
}

// SumCheckerX vanishes if and only if p3.x == (p1 + p2).x under the
// chord rule, assuming no edge case occurs. Together with SumCheckerY it
// lets consumers constrain an addition without dividing.
func SumCheckerX(p1, p2, p3 Point) fp7.E7 {
	dx := p2.X.Sub(p1.X)
	dy := p2.Y.Sub(p1.Y)
	return p1.X.Add(p2.X).Add(p3.X).Mul(dx.Square()).Sub(dy.Square())
}

// SumCheckerY vanishes if and only if p3.y == (p1 + p2).y under the
// chord rule, assuming no edge case occurs.
func SumCheckerY(p1, p2, p3 Point) fp7.E7 {
	return p1.Y.Add(p3.Y).Mul(p2.X.Sub(p1.X)).Sub(p2.Y.Sub(p1.Y).Mul(p1.X.Sub(p3.X)))
}
