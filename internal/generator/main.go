package main

import (
	"path/filepath"

	"github.com/consensys/bavard"
	"github.com/consensys/septic/babybear"
)

const copyrightHolder = "Consensys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2025, "septic")

//go:generate go run main.go
func main() {

	d := templateData{
		RootPath: "../../fp7/",
	}
	d.ZPowP, d.ZPowP2 = frobeniusTables()

	entries := []bavard.Entry{
		{File: filepath.Join(d.RootPath, "frobenius_tables.go"), Templates: []string{"frobenius_tables.go.tmpl"}},
	}
	if err := bgen.Generate(d, "fp7", "./template/", entries...); err != nil {
		panic(err)
	}
}

type templateData struct {
	RootPath string
	ZPowP    [7][7]uint32
	ZPowP2   [7][7]uint32
}

// poly is a dense polynomial over the BabyBear field, little-endian
// coefficients, reduced modulo z⁷ - 2z - 5.
type poly [7]babybear.Element

func one() poly {
	var p poly
	p[0] = babybear.One()
	return p
}

func mul(a, b poly) poly {
	var res [13]babybear.Element
	for i := range a {
		for j := range b {
			res[i+j] = res[i+j].Add(a[i].Mul(b[j]))
		}
	}

	// z⁷ = 2z + 5
	var ret poly
	copy(ret[:], res[:7])
	five := babybear.FromCanonicalU32(5)
	for i := 7; i < 13; i++ {
		ret[i-7] = ret[i-7].Add(res[i].Mul(five))
		ret[i-6] = ret[i-6].Add(res[i].Double())
	}
	return ret
}

func pow(base poly, e uint64) poly {
	result := one()
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mul(result, base)
		}
		base = mul(base, base)
	}
	return result
}

// frobeniusTables expands z^(i·p) and z^(i·p²) for i in 0..6 in the
// monomial basis. The Frobenius maps of fp7 are the linear maps with
// these rows as coefficients.
func frobeniusTables() (zPowP, zPowP2 [7][7]uint32) {
	var z poly
	z[1] = babybear.One()

	zp := pow(z, uint64(babybear.Modulus))
	zp2 := pow(zp, uint64(babybear.Modulus))

	rowP := one()
	rowP2 := one()
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			zPowP[i][j] = rowP[j].AsCanonicalU32()
			zPowP2[i][j] = rowP2[j].AsCanonicalU32()
		}
		rowP = mul(rowP, zp)
		rowP2 = mul(rowP2, zp2)
	}
	return
}
