package fp7

import "github.com/consensys/septic/babybear"

// Sqrt returns a square root of z, given norm = z.Norm().
//
// The caller must have established that z is a square; IsSquare returns
// the norm for exactly this purpose. For non-squares the result is
// undefined.
//
// Raising z to (p+1)/2 and pushing the result through the odd Frobenius
// orbit turns the extension square root into a base field one, which
// Cipolla's algorithm then extracts from the norm.
func (z E7) Sqrt(norm babybear.Element) E7 {
	if z.IsZero() || z.IsOne() {
		return z
	}

	// nPower = z^((p+1)/2): (p+1)/2 = 1 + 2^26 + 2^27 + 2^28 + 2^29.
	nIter := z
	nPower := z
	for i := 1; i < 30; i++ {
		nIter = nIter.Square()
		if i >= 26 {
			nPower = nPower.Mul(nIter)
		}
	}

	nFrobenius := nPower.Frobenius()
	denominator := nFrobenius
	nFrobenius = nFrobenius.FrobeniusSquare()
	denominator = denominator.Mul(nFrobenius)
	nFrobenius = nFrobenius.FrobeniusSquare()
	denominator = denominator.Mul(nFrobenius)
	denominator = denominator.Mul(z)

	// Find a with a² - 1/norm a non-residue, then take
	// (a + i)^((p+1)/2) in F_p[i]/(i² - (a² - 1/norm)).
	base := norm.Inverse()
	g := babybear.Generator()
	a := babybear.One()
	nonresidue := a.Square().Sub(base)
	for nonresidue.IsSquare() {
		a = a.Mul(g)
		nonresidue = a.Square().Sub(base)
	}

	x := cipolla{real: a, imag: babybear.One()}
	x = x.pow(halfModulusPlusOne, nonresidue)

	return denominator.MulByBase(x.real)
}

// cipolla is an element of the auxiliary quadratic extension
// F_p[i]/(i² - nonresidue) that exists only while extracting base field
// square roots. The nonresidue is threaded through the operations rather
// than stored.
type cipolla struct {
	real, imag babybear.Element
}

func (c cipolla) mul(x cipolla, nonresidue babybear.Element) cipolla {
	return cipolla{
		real: c.real.Mul(x.real).Add(nonresidue.Mul(c.imag).Mul(x.imag)),
		imag: c.real.Mul(x.imag).Add(c.imag.Mul(x.real)),
	}
}

func (c cipolla) pow(e uint32, nonresidue babybear.Element) cipolla {
	result := cipolla{real: babybear.One()}
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result.mul(c, nonresidue)
		}
		c = c.mul(c, nonresidue)
	}
	return result
}
