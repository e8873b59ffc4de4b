// Package septic implements elliptic curve digests of cross-table
// interactions over a degree-7 extension of the babybear field.
//
// The packages build on each other bottom-up:
//   - babybear: the 31-bit prime field p = 2³¹ - 2²⁷ + 1
//   - fp7: the extension F_{p⁷} = F_p[z]/(z⁷ - 2z - 5)
//   - curve: the elliptic curve y² = x³ + 2x + 26z⁵ over fp7
//   - digest: interaction encoding and running digests
package septic

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
