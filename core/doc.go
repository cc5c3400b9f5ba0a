// Package core provides the thread-safe in-memory Graph consumed by the
// matrix and eigen packages.
//
// The Graph G = (V,E) is deliberately small: it carries exactly the
// surface the spectral pipeline reads —
//
//   - directedness and weightedness queries (Directed, Weighted)
//   - vertex count and deterministic vertex enumeration (Vertices, ID asc)
//   - edge enumeration as (From,To,Weight) triples (Edges, insertion order)
//   - per-edge weight lookup (Weight)
//   - per-vertex degree (Degree)
//
// Configuration is functional-option based:
//
//   - WithDirected(true)  — edges are one-way; note that the adjacency,
//     Laplacian and PageRank builders reject directed graphs.
//   - WithWeighted()      — permits non-zero float64 weights; otherwise
//     AddEdge(weight≠0) returns ErrBadWeight.
//   - WithLoops()         — permits self-loops (from == to).
//
// Graphs are simple: a second edge between the same endpoints returns
// ErrMultiEdgeNotAllowed. All weights must be finite; NaN or ±Inf is
// rejected at ingestion with ErrBadWeight so the numeric layers never see
// non-finite values.
//
// A single sync.RWMutex guards all state, so fixtures may be built from
// multiple goroutines; read queries take the read lock only.
package core
