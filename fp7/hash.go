package fp7

import "github.com/consensys/septic/babybear"

// Coefficients of the fixed universal hash, public randomness taken from
// the digits of π.
var (
	hashA = FromCanonicalU32s([7]uint32{0x31415926, 0x53589793, 0x23846264, 0x33832795, 0x02884197, 0x16939937, 0x51058209})
	hashB = FromCanonicalU32s([7]uint32{0x74944592, 0x30781640, 0x62862089, 0x09862803, 0x48253421, 0x17067982, 0x14808651})
)

// UniversalHash maps x to x·A + B. Curve lifting hashes its message
// through this map so that the x trials behave like uniform field
// elements.
func UniversalHash(x E7) E7 {
	return x.Mul(hashA).Add(hashB)
}

// A digest y-coordinate carries the direction of its interaction in the
// canonical value of its top coefficient: [1, ⌈p/2⌉] reads as receive,
// [⌈p/2⌉, p-1] as send, and 0 marks the exceptional roots curve lifting
// must skip.

// IsReceive reports whether z, viewed as a y-coordinate, encodes a
// receive interaction.
func (z E7) IsReceive() bool {
	v := z[6].AsCanonicalU32()
	return 1 <= v && v <= halfModulusPlusOne
}

// IsSend reports whether z, viewed as a y-coordinate, encodes a send
// interaction.
func (z E7) IsSend() bool {
	v := z[6].AsCanonicalU32()
	return halfModulusPlusOne <= v && v <= babybear.Modulus-1
}

// IsException reports whether z, viewed as a y-coordinate, is
// exceptional.
func (z E7) IsException() bool {
	return z[6].IsZero()
}
