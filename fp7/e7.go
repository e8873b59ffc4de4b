// Package fp7 implements F_{p⁷}, the degree-7 extension of the babybear
// field with modulus z⁷ - 2z - 5.
//
// The extension is just large enough that discrete logarithms on an
// elliptic curve defined over it are out of reach, which is what the
// curve package needs to compress cross-table interactions into a single
// point. Elements are kept in the monomial basis 1, z, ..., z⁶.
package fp7

import (
	"strings"

	"github.com/consensys/septic/babybear"
)

// E7 is an element of F_{p⁷}; z[i] is the coefficient of zⁱ.
type E7 [7]babybear.Element

// halfModulusPlusOne is ⌈p/2⌉, the boundary between the canonical values
// classified as receive and those classified as send.
const halfModulusPlusOne = (babybear.Modulus + 1) / 2

var (
	two  = babybear.Two()
	five = babybear.FromCanonicalU32(5)
)

// Zero returns 0.
func Zero() E7 {
	return E7{}
}

// One returns 1.
func One() E7 {
	return FromBase(babybear.One())
}

// Two returns 2.
func Two() E7 {
	return FromBase(babybear.Two())
}

// Generator returns 2 + z, a generator of the multiplicative group.
func Generator() E7 {
	var z E7
	z[0] = babybear.Two()
	z[1] = babybear.One()
	return z
}

// FromBase embeds a base field element as the constant coefficient.
func FromBase(x babybear.Element) E7 {
	var z E7
	z[0] = x
	return z
}

// FromCanonicalU32 embeds a canonical value as the constant coefficient.
// It panics if v is not reduced.
func FromCanonicalU32(v uint32) E7 {
	return FromBase(babybear.FromCanonicalU32(v))
}

// FromCanonicalU32s builds an element from seven canonical coefficients.
// It panics if any of them is not reduced.
func FromCanonicalU32s(vs [7]uint32) E7 {
	var z E7
	for i := range z {
		z[i] = babybear.FromCanonicalU32(vs[i])
	}
	return z
}

// FromUint32Block builds an element from a block of canonical lanes.
func FromUint32Block(b Block[uint32]) E7 {
	return FromCanonicalU32s([7]uint32(b))
}

// Add returns z + x.
func (z E7) Add(x E7) E7 {
	for i := range z {
		z[i] = z[i].Add(x[i])
	}
	return z
}

// Sub returns z - x.
func (z E7) Sub(x E7) E7 {
	for i := range z {
		z[i] = z[i].Sub(x[i])
	}
	return z
}

// Neg returns -z.
func (z E7) Neg() E7 {
	for i := range z {
		z[i] = z[i].Neg()
	}
	return z
}

// Double returns 2z.
func (z E7) Double() E7 {
	return z.Add(z)
}

// Mul returns z * x: the schoolbook product of the two polynomials,
// folded back below degree 7 with z⁷ = 2z + 5.
func (z E7) Mul(x E7) E7 {
	var res [13]babybear.Element
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			res[i+j] = res[i+j].Add(z[i].Mul(x[j]))
		}
	}
	var ret E7
	copy(ret[:], res[:7])
	for i := 7; i < 13; i++ {
		ret[i-7] = ret[i-7].Add(res[i].Mul(five))
		ret[i-6] = ret[i-6].Add(res[i].Mul(two))
	}
	return ret
}

// Square returns z².
func (z E7) Square() E7 {
	return z.Mul(z)
}

// Cube returns z³.
func (z E7) Cube() E7 {
	return z.Square().Mul(z)
}

// MulByBase returns z scaled by a base field element.
func (z E7) MulByBase(x babybear.Element) E7 {
	for i := range z {
		z[i] = z[i].Mul(x)
	}
	return z
}

// Div returns z / x. It panics if x is zero.
func (z E7) Div(x E7) E7 {
	return z.Mul(x.Inverse())
}

// Equal reports whether z == x.
func (z E7) Equal(x E7) bool {
	return z == x
}

// IsZero reports whether z == 0.
func (z E7) IsZero() bool {
	return z == E7{}
}

// IsOne reports whether z == 1.
func (z E7) IsOne() bool {
	return z == One()
}

func (z E7) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range z {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(z[i].String())
	}
	sb.WriteString("]")
	return sb.String()
}
