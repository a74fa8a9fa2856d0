// Package core provides the undirected multigraph used by every FVS algorithm
// in this module.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are dense, non-negative int IDs (one vertex type everywhere).
//   - Edges are stored as multiplicities: adj[u][v] = number of parallel u–v edges.
//   - Self-loops are allowed transiently (kernelization creates them and then
//     resolves them); a loop is stored at adj[v][v] and contributes 2 to Degree(v).
//   - Deterministic enumeration: Vertices(), Neighbors(), NeighborList(),
//     IncidentEdges() and Edges() return sorted results.
//
// Ownership:
//
//	A Graph is owned by exactly one algorithm run at a time. It carries no locks:
//	parallel work operates on independent clones (see package solver).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v int) error            // O(1), idempotent
//	HasVertex(v int) bool             // O(1)
//	RemoveVertex(v int) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v int) error           // O(1), adds one parallel edge
//	AddEdges(u, v, m int) error       // O(1), adds m parallel edges
//	RemoveEdge(u, v int) error        // O(1), removes one parallel edge
//	SetMultiplicity(u, v, m int) error// O(1)
//
//	// Query
//	Degree(v int) int                 // O(1) amortized (cached)
//	Neighbors(v int) []int            // O(d log d), unique, sorted
//	NeighborList(v int) []int         // O(d log d), one entry per edge end
//	IncidentEdges(v int) []Edge       // O(d log d)
//	Multiplicity(u, v int) int        // O(1)
//	Vertices() []int                  // O(V log V)
//	Edges() []Edge                    // O(E log E)
//
//	// Copies
//	Clone() *Graph                    // O(V+E)
//	InducedSubgraph(keep) *Graph      // O(V+E)
//
// Errors:
//
//	ErrInvalidVertex       – negative vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrInvalidMultiplicity – multiplicity < 1 for AddEdges, < 0 for SetMultiplicity
package core
