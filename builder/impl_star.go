// SPDX-License-Identifier: MIT
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one hub (index 0) plus n-1 leaves.
//   - Emits edges hub → leaf_i for i=1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star S_n with hub cfg.idFn(0).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}

		em := &edgeEmitter{g: g, cfg: cfg, method: methodStar}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := em.emit(hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
