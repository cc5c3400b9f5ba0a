// Package builder constructs deterministic graph topologies for the
// spectral pipeline — the fixtures its tests and examples are built from.
//
// One orchestrator, Build(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder options, and applies each Constructor in order.
// Same inputs and constructor order ⇒ identical graphs, always.
//
// Topologies:
//
//	Complete(n) — K_n, every pair connected
//	Cycle(n)    — C_n, ring 0→1→…→n−1→0
//	Path(n)     — P_n, chain 0→1→…→n−1
//	Star(n)     — S_n, vertex 0 connected to 1…n−1
//
// Vertex IDs come from the configured ID function (default "v0", "v1", …)
// zero-padded wide enough that lexicographic order equals index order, so
// matrix rows line up with construction order. Weights come from the
// configured weight function when the graph is weighted, 0 otherwise.
//
// Constructors never panic; they validate parameters and return sentinel
// errors (ErrTooFewVertices, ErrConstructFailed) wrapped once at the
// Build boundary.
package builder
