package curve

import "github.com/consensys/septic/fp7"

// LiftX deterministically lifts a message to a curve point with a
// receive-convention y coordinate.
//
// An arbitrary x coordinate need not be on the curve, so the message is
// retried with an offset in [0, 256) folded into its first lane at bit
// 16: each trial universal-hashes the perturbed message into an x
// candidate and accepts the first one whose curve formula value is a
// square with a non-exceptional root. Roots classified as send are
// negated, pinning the returned y to the receive range. Returns the
// point and the offset that succeeded.
//
// A trial succeeds with probability about one half, so 256 offsets never
// run out for honest inputs; LiftX panics if they do.
func LiftX(m fp7.E7) (Point, uint8) {
	for offset := uint32(0); offset < 256; offset++ {
		mTrial := m.Add(fp7.FromCanonicalU32(offset << 16))
		xTrial := fp7.UniversalHash(mTrial)

		ySquared := CurveFormula(xTrial)
		norm, ok := ySquared.IsSquare()
		if !ok {
			continue
		}
		y := ySquared.Sqrt(norm)
		if y.IsException() {
			continue
		}
		if y.IsSend() {
			y = y.Neg()
		}
		return Point{X: xTrial, Y: y}, uint8(offset)
	}
	panic("curve: no lift found after 256 attempts")
}
