package fp7

import (
	"github.com/consensys/septic/babybear"
	"github.com/consensys/septic/debug"
)

// Frobenius tables in Montgomery form, converted once at init from the
// generated canonical tables. Row i expands z^(i·p) (resp. z^(i·p²)) in
// the monomial basis, so raising to the p-th power reduces to a fixed
// linear map.
var (
	frobeniusRows       [7][7]babybear.Element
	frobeniusSquareRows [7][7]babybear.Element
)

func init() {
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			frobeniusRows[i][j] = babybear.FromCanonicalU32(zPowP[i][j])
			frobeniusSquareRows[i][j] = babybear.FromCanonicalU32(zPowP2[i][j])
		}
	}
}

// Frobenius returns z^p.
func (z E7) Frobenius() E7 {
	return z.applyRows(&frobeniusRows)
}

// FrobeniusSquare returns z^(p²).
func (z E7) FrobeniusSquare() E7 {
	return z.applyRows(&frobeniusSquareRows)
}

func (z E7) applyRows(rows *[7][7]babybear.Element) E7 {
	var ret E7
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			ret[j] = ret[j].Add(z[i].Mul(rows[i][j]))
		}
	}
	return ret
}

// powR1 returns z^(r-1) where r = (p⁷-1)/(p-1); that is, the product of
// the six nontrivial Galois conjugates of z.
func (z E7) powR1() E7 {
	base := z.Frobenius().Mul(z.FrobeniusSquare())
	baseP2 := base.FrobeniusSquare()
	baseP4 := baseP2.FrobeniusSquare()
	return base.Mul(baseP2).Mul(baseP4)
}

// Norm returns z^r with r = (p⁷-1)/(p-1). The conjugate product lands in
// the base field, so only the constant coefficient survives.
func (z E7) Norm() babybear.Element {
	pr := z.powR1().Mul(z)
	if debug.Debug {
		for i := 1; i < 7; i++ {
			if !pr[i].IsZero() {
				panic("fp7: norm escaped the base field")
			}
		}
	}
	return pr[0]
}

// IsSquare reports whether z is a square in F_{p⁷} and returns the norm
// computed along the way, so Sqrt can reuse it. An element is a square
// exactly when its norm is a square in the base field.
func (z E7) IsSquare() (babybear.Element, bool) {
	n := z.Norm()
	return n, n.IsSquare()
}

// Inverse returns 1/z. It panics if z is zero.
//
// 1/z = z^(r-1) / z^r, and z^r is the norm, so a single base field
// inversion suffices.
func (z E7) Inverse() E7 {
	if z.IsZero() {
		panic("fp7: inverse of zero")
	}
	pr1 := z.powR1()
	norm := pr1.Mul(z)[0]
	return pr1.MulByBase(norm.Inverse())
}
