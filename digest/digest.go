// Package digest encodes cross-table interactions as points on a septic
// elliptic curve and folds them into running digests.
//
// Every interaction is packed into seven field lanes, tagged with its
// table kind, and deterministically lifted onto the curve. Receives keep
// the lifted point and sends negate it, so a send and its matching
// receive contribute opposite points: when every message sent is also
// received, the points cancel out of the combined sum and the digests of
// all tables can be checked against each other with curve additions
// alone.
package digest

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/consensys/septic/curve"
	"github.com/consensys/septic/debug"
	"github.com/consensys/septic/fp7"
)

// Digest is the running sum of encoded interaction points. Sums are
// anchored at a fixed start point rather than the group identity, which
// keeps the incomplete addition formulas clear of edge cases.
type Digest curve.Point

// The start point, derived from the digits of √2.
var (
	startX = fp7.FromCanonicalU32s([7]uint32{0x1434213, 0x5623730, 0x9504880, 0x1688724, 0x2096980, 0x7856967, 0x1875376})
	startY = fp7.FromCanonicalU32s([7]uint32{885797405, 1130275556, 567836311, 52700240, 239639200, 442612155, 1839439733})
)

// Zero returns the digest of no interactions, the fixed start point.
func Zero() Digest {
	return Digest{X: startX, Y: startY}
}

// IsZero reports whether d is the empty digest.
func (d Digest) IsZero() bool {
	return curve.Point(d).Equal(curve.Point(Zero()))
}

// Accumulate returns d with the given points folded in by incomplete
// additions.
func (d Digest) Accumulate(points ...curve.Point) Digest {
	acc := curve.Point(d)
	for _, p := range points {
		acc = acc.AddIncomplete(p)
	}
	return Digest(acc)
}

// Sum encodes every interaction and folds the points into a digest
// anchored at Zero. Unlike the panicking fast paths, Sum validates the
// interactions and reports the first malformed one.
func Sum(interactions []Interaction, opts ...Option) (Digest, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Digest{}, fmt.Errorf("apply options: %w", err)
	}

	start := time.Now()

	encoded := make([]Encoded, len(interactions))
	nbTasks := cfg.NbTasks
	if nbTasks > len(interactions) {
		nbTasks = len(interactions)
	}

	g := new(errgroup.Group)
	for task := 0; task < nbTasks; task++ {
		chunkStart := task * len(interactions) / nbTasks
		chunkEnd := (task + 1) * len(interactions) / nbTasks
		g.Go(func() (err error) {
			defer func() {
				// an unsatisfiable lift panics; recover it into the error
				if r := recover(); r != nil {
					err = fmt.Errorf("%v\n%s", r, debug.Stack())
				}
			}()
			for i := chunkStart; i < chunkEnd; i++ {
				if err := interactions[i].validate(); err != nil {
					return fmt.Errorf("interaction %d: %w", i, err)
				}
				encoded[i] = interactions[i].Encode()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Digest{}, err
	}

	d := Zero()
	for i := range encoded {
		d = d.Accumulate(encoded[i].Point)
	}

	log := cfg.Logger
	log.Debug().Int("nbInteractions", len(interactions)).Dur("took", time.Since(start)).Msg("digest sum")
	return d, nil
}
