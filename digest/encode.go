package digest

import (
	"math/bits"

	"github.com/consensys/septic/babybear"
	"github.com/consensys/septic/curve"
	"github.com/consensys/septic/debug"
	"github.com/consensys/septic/fp7"
	"github.com/consensys/septic/internal/parallel"
)

// midpoint is ⌈p/2⌉, where the y-coordinate ranges for receive and send
// interactions meet.
const midpoint = (babybear.Modulus + 1) / 2

// maxRangeValue bounds RangeValue: both direction ranges have width
// 2³⁰ - 2²⁶.
const maxRangeValue = 1<<30 - 1<<26

// Encoded is the curve encoding of one interaction: the digest point,
// the lift offset that succeeded, and the distance of the y-coordinate
// from the boundary of its direction range.
type Encoded struct {
	Point      curve.Point
	Offset     uint8
	RangeValue uint32
}

// Encode lifts the interaction onto the curve.
//
// The message lanes are tagged with kind·2²⁴ on their first lane and
// lifted; the lifted point is receive-convention, so send interactions
// negate it. Encoding is deterministic, and a send and its matching
// receive encode to a point and its negation.
func (iv Interaction) Encode() Encoded {
	m := fp7.FromUint32Block(iv.Message).Add(fp7.FromCanonicalU32(uint32(iv.Kind) << 24))
	point, offset := curve.LiftX(m)
	if !iv.Receive {
		point = point.Neg()
	}

	y6 := point.Y[6].AsCanonicalU32()
	rangeValue := y6 - 1
	if !iv.Receive {
		rangeValue = y6 - midpoint
	}
	if debug.Debug && rangeValue >= maxRangeValue {
		panic("digest: range value out of bounds")
	}

	return Encoded{Point: point, Offset: offset, RangeValue: rangeValue}
}

// RangeCheckWitness returns the inverse of b₂₆+b₂₇+b₂₈+b₂₉ - 4, where
// bᵢ is bit i of RangeValue. RangeValue stays below 2³⁰ - 2²⁶, so at
// least one of the four bits is clear and the witness always exists.
func (e Encoded) RangeCheckWitness() babybear.Element {
	sum := uint32(bits.OnesCount32(e.RangeValue >> 26 & 0xf))
	return babybear.FromCanonicalU32(sum).Sub(babybear.FromCanonicalU32(4)).Inverse()
}

// EncodeAll encodes interactions on all cores. Unlike Sum it does not
// validate its inputs: a malformed interaction panics.
func EncodeAll(interactions []Interaction) []Encoded {
	encoded := make([]Encoded, len(interactions))
	parallel.Execute(len(interactions), func(start, end int) {
		for i := start; i < end; i++ {
			encoded[i] = interactions[i].Encode()
		}
	})
	return encoded
}
