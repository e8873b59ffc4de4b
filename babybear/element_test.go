package babybear

import (
	"math/big"
	"testing"

	gcbabybear "github.com/consensys/gnark-crypto/field/babybear"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func genElement() gopter.Gen {
	return gen.UInt32Range(0, Modulus-1).Map(FromCanonicalU32)
}

func genNonZeroElement() gopter.Gen {
	return gen.UInt32Range(1, Modulus-1).Map(FromCanonicalU32)
}

func TestMontgomeryRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("AsCanonicalU32(FromCanonicalU32(v)) == v", prop.ForAll(
		func(v uint32) bool {
			return FromCanonicalU32(v).AsCanonicalU32() == v
		},
		gen.UInt32Range(0, Modulus-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// reference converts a gnark-crypto babybear element to its canonical value.
func reference(v uint32) *gcbabybear.Element {
	var e gcbabybear.Element
	e.SetUint64(uint64(v))
	return &e
}

func canonical(e *gcbabybear.Element) uint32 {
	return uint32(e.BigInt(big.NewInt(0)).Uint64())
}

func TestDifferentialAgainstGnarkCrypto(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)
	properties.Property("add/sub/mul/neg/square match gnark-crypto", prop.ForAll(
		func(a, b uint32) bool {
			x, y := FromCanonicalU32(a), FromCanonicalU32(b)
			gx, gy := reference(a), reference(b)

			var r gcbabybear.Element
			if x.Add(y).AsCanonicalU32() != canonical(r.Add(gx, gy)) {
				return false
			}
			if x.Sub(y).AsCanonicalU32() != canonical(r.Sub(gx, gy)) {
				return false
			}
			if x.Mul(y).AsCanonicalU32() != canonical(r.Mul(gx, gy)) {
				return false
			}
			if x.Neg().AsCanonicalU32() != canonical(r.Neg(gx)) {
				return false
			}
			return x.Square().AsCanonicalU32() == canonical(r.Square(gx))
		},
		gen.UInt32Range(0, Modulus-1),
		gen.UInt32Range(0, Modulus-1),
	))

	properties.Property("inverse matches gnark-crypto", prop.ForAll(
		func(a uint32) bool {
			var r gcbabybear.Element
			return FromCanonicalU32(a).Inverse().AsCanonicalU32() == canonical(r.Inverse(reference(a)))
		},
		gen.UInt32Range(1, Modulus-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestInverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("x * x^-1 == 1", prop.ForAll(
		func(x Element) bool {
			return x.Mul(x.Inverse()).IsOne()
		},
		genNonZeroElement(),
	))

	// the addition chain must agree with the generic exponentiation to p-2
	properties.Property("addition chain == Exp(p-2)", prop.ForAll(
		func(x Element) bool {
			return x.Inverse().Equal(x.Exp(uint64(Modulus) - 2))
		},
		genNonZeroElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	require.Panics(t, func() { Zero().Inverse() })
	require.Panics(t, func() { Zero().Div(Zero()) })
}

func TestIsSquare(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("y*y is a square", prop.ForAll(
		func(y Element) bool {
			return y.Square().IsSquare()
		},
		genNonZeroElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	// powers of a generator alternate between non-squares and squares
	g := Generator()
	b := One()
	for i := 1; i < 256; i++ {
		b = b.Mul(g)
		require.Equal(t, i%2 == 0, b.IsSquare(), "power %d", i)
	}

	// Euler's criterion does not report zero as a square
	require.False(t, Zero().IsSquare())
}

func TestExp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("Exp matches repeated multiplication", prop.ForAll(
		func(x Element, e uint8) bool {
			expected := One()
			for i := uint8(0); i < e; i++ {
				expected = expected.Mul(x)
			}
			return x.Exp(uint64(e)).Equal(expected)
		},
		genElement(),
		gen.UInt8(),
	))

	properties.Property("ExpPowerOfTwo(k) == Exp(2^k)", prop.ForAll(
		func(x Element, k uint8) bool {
			k = k % 16
			return x.ExpPowerOfTwo(int(k)).Equal(x.Exp(uint64(1) << k))
		},
		genElement(),
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestConstructors(t *testing.T) {
	assert := require.New(t)

	assert.Equal(uint32(0), Zero().AsCanonicalU32())
	assert.Equal(uint32(1), One().AsCanonicalU32())
	assert.Equal(uint32(2), Two().AsCanonicalU32())
	assert.Equal(uint32(31), Generator().AsCanonicalU32())
	assert.Equal(uint32(255), FromCanonicalU8(255).AsCanonicalU32())
	assert.Equal(uint32(65535), FromCanonicalU16(65535).AsCanonicalU32())
	assert.True(FromBool(true).IsOne())
	assert.True(FromBool(false).IsZero())
	assert.Equal("2013265920", FromCanonicalU32(Modulus-1).String())

	assert.True(One().Equal(One()))
	assert.False(One().Equal(Two()))

	assert.Panics(func() { FromCanonicalU32(Modulus) })
	assert.Panics(func() { FromCanonicalU32(0xffffffff) })
}

func TestArithmeticIdentities(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("x + (-x) == 0 and x - x == 0", prop.ForAll(
		func(x Element) bool {
			return x.Add(x.Neg()).IsZero() && x.Sub(x).IsZero()
		},
		genElement(),
	))

	properties.Property("Double(x) == x + x", prop.ForAll(
		func(x Element) bool {
			return x.Double().Equal(x.Add(x))
		},
		genElement(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(x, y, z Element) bool {
			return x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z)))
		},
		genElement(),
		genElement(),
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
