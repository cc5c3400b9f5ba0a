// SPDX-License-Identifier: MIT

// Package builder: topology constructors.
//
// Contract (all constructors):
//   - Validate n first; fail fast with ErrTooFewVertices.
//   - Add vertices in ascending index order, then emit edges in a stable
//     documented order, so equal inputs always yield equal graphs.
//   - Honor the graph's mode flags through core (directed graphs get
//     edges oriented low→high index).
package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// Method tags and minimums (no magic strings/numbers).
const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"

	minCompleteNodes = 2
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
)

// Complete returns a Constructor building the complete graph K_n:
// every unordered pair (i,j), i<j, connected. Edge order: ascending (i,j).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cycle returns a Constructor building the n-vertex cycle C_n:
// edges i→(i+1) mod n in ascending i.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor building the n-vertex path P_n:
// edges i→(i+1) in ascending i.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}

		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor building the n-vertex star S_n:
// vertex 0 is the hub, edges 0→i for i = 1..n−1 in ascending i.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}

		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
