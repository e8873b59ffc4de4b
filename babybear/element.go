// Package babybear implements arithmetic over the BabyBear prime field
// F_p with p = 2^31 - 2^27 + 1 = 2013265921.
//
// Elements are stored in Montgomery form with R = 2^32, so every product
// is reduced with a single 64-bit Montgomery reduction and no division.
// The API is immutable: operations take and return values, and the zero
// value of Element is the field's zero.
package babybear

import "strconv"

const (
	// Modulus is the BabyBear prime 2^31 - 2^27 + 1.
	Modulus uint32 = 0x78000001

	// montyMu = Modulus^-1 mod 2^32, used by montyReduce.
	montyMu uint32 = 0x88000001

	// montyOne is R mod Modulus, the Montgomery form of 1.
	montyOne uint32 = 0x0ffffffe
)

// Element is a BabyBear field element in Montgomery form. It is defined as a
// one-element array to prevent accidental use of native integer operators.
type Element [1]uint32

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{montyOne}
}

// Two returns the element 2.
func Two() Element {
	return FromCanonicalU32(2)
}

// Generator returns 31, a generator of the multiplicative group (and hence a
// quadratic non-residue).
func Generator() Element {
	return FromCanonicalU32(31)
}

// FromCanonicalU32 converts a canonical representative to an Element.
// It panics if v >= Modulus; inputs are expected to be reduced by the caller.
func FromCanonicalU32(v uint32) Element {
	if v >= Modulus {
		panic("babybear: value out of range")
	}
	return Element{toMonty(v)}
}

// FromCanonicalU16 converts a 16-bit value to an Element.
func FromCanonicalU16(v uint16) Element {
	return FromCanonicalU32(uint32(v))
}

// FromCanonicalU8 converts an 8-bit value to an Element.
func FromCanonicalU8(v uint8) Element {
	return FromCanonicalU32(uint32(v))
}

// FromBool returns One() for true and Zero() for false.
func FromBool(b bool) Element {
	if b {
		return One()
	}
	return Zero()
}

// AsCanonicalU32 returns the canonical representative in [0, Modulus).
func (z Element) AsCanonicalU32() uint32 {
	return montyReduce(uint64(z[0]))
}

func toMonty(v uint32) uint32 {
	return uint32((uint64(v) << 32) % uint64(Modulus))
}

// montyReduce computes x / R mod Modulus for x < R*Modulus.
func montyReduce(x uint64) uint32 {
	t := (x * uint64(montyMu)) & 0xffffffff
	u := t * uint64(Modulus)
	hi := uint32((x - u) >> 32)
	if x < u {
		hi += Modulus
	}
	return hi
}

// Add returns z + x.
func (z Element) Add(x Element) Element {
	v := z[0] + x[0]
	if v >= Modulus {
		v -= Modulus
	}
	return Element{v}
}

// Sub returns z - x.
func (z Element) Sub(x Element) Element {
	v := z[0]
	if v < x[0] {
		v += Modulus
	}
	return Element{v - x[0]}
}

// Neg returns -z.
func (z Element) Neg() Element {
	if z[0] == 0 {
		return z
	}
	return Element{Modulus - z[0]}
}

// Mul returns z * x.
func (z Element) Mul(x Element) Element {
	return Element{montyReduce(uint64(z[0]) * uint64(x[0]))}
}

// Square returns z * z.
func (z Element) Square() Element {
	return z.Mul(z)
}

// Double returns 2 * z.
func (z Element) Double() Element {
	return z.Add(z)
}

// Div returns z / x. It panics if x is zero.
func (z Element) Div(x Element) Element {
	return z.Mul(x.Inverse())
}

// Exp returns z^e by square-and-multiply. The exponent is treated as public:
// the sequence of operations depends on it.
func (z Element) Exp(e uint64) Element {
	result := One()
	sq := z
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result.Mul(sq)
		}
		sq = sq.Mul(sq)
	}
	return result
}

// ExpPowerOfTwo returns z^(2^k), i.e. k repeated squarings.
func (z Element) ExpPowerOfTwo(k int) Element {
	result := z
	for i := 0; i < k; i++ {
		result = result.Square()
	}
	return result
}

// Inverse returns z^-1, computed as z^(Modulus-2) with an addition chain
// tuned for the bit pattern 0b1110111111111111111111111111111 of Modulus-2.
// The intermediate names spell the exponent reached at each step.
// It panics if z is zero.
func (z Element) Inverse() Element {
	if z.IsZero() {
		panic("babybear: inverse of zero")
	}

	p1 := z
	p100000000 := p1.ExpPowerOfTwo(8)
	p100000001 := p100000000.Mul(p1)
	p10000000000000000 := p100000000.ExpPowerOfTwo(8)
	p10000000100000001 := p10000000000000000.Mul(p100000001)
	p10000000100000001000 := p10000000100000001.ExpPowerOfTwo(3)
	p1000000010000000100000000 := p10000000100000001000.ExpPowerOfTwo(5)
	p1000000010000000100000001 := p1000000010000000100000000.Mul(p1)
	p1000010010000100100001001 := p1000000010000000100000001.Mul(p10000000100000001000)
	p10000000100000001000000010 := p1000000010000000100000001.Square()
	p11000010110000101100001011 := p10000000100000001000000010.Mul(p1000010010000100100001001)
	p100000001000000010000000100 := p10000000100000001000000010.Square()
	p111000011110000111100001111 := p100000001000000010000000100.Mul(p11000010110000101100001011)
	p1110000111100001111000011110000 := p111000011110000111100001111.ExpPowerOfTwo(4)
	p1110111111111111111111111111111 := p1110000111100001111000011110000.Mul(p111000011110000111100001111)

	return p1110111111111111111111111111111
}

// IsSquare reports whether z is a quadratic residue, by Euler's criterion
// z^((Modulus-1)/2) == 1. Note that zero is not reported as a square.
func (z Element) IsSquare() bool {
	return z.Exp(uint64(Modulus-1) / 2).IsOne()
}

// Equal reports whether z == x.
func (z Element) Equal(x Element) bool {
	return z[0] == x[0]
}

// IsZero reports whether z is the additive identity.
func (z Element) IsZero() bool {
	return z[0] == 0
}

// IsOne reports whether z is the multiplicative identity.
func (z Element) IsOne() bool {
	return z[0] == montyOne
}

// String returns the canonical decimal representation of z.
func (z Element) String() string {
	return strconv.FormatUint(uint64(z.AsCanonicalU32()), 10)
}
