package builder

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathVertices     = 1
	minCycleVertices    = 3
	minCompleteVertices = 1
	minGridDim          = 1
	minRandomVertices   = 1

	gridIDFmt = "%d,%d" // "r,c"
)

// Path builds P_n: 0–1–…–(n-1). Directed graphs get edges i→i+1 only.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i), cfg.idFn(i+1), false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: a path closed by the edge (n-1)–0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n), false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n. Directed graphs get both directions of every pair.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j), true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbour lattice with vertex IDs "r,c".
// Directed graphs get both directions of every link.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds G(n, p): every ordered pair (directed) or unordered
// pair (undirected) becomes an edge independently with probability p.
// Self-loops are considered only when the graph allows them.
// p of exactly 0 or 1 needs no RNG; anything in between requires WithSeed
// or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			if g.Looped() && !g.Directed() {
				start = i
			}
			for j := start; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !keep() {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j), false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
