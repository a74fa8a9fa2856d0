// SPDX-License-Identifier: MIT
// Package core defines the Graph and Edge types and the sentinel errors shared
// by all graph mutators.
//
// Errors:
//
//	ErrInvalidVertex       - vertex ID is negative.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrInvalidMultiplicity - multiplicity outside the accepted range.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates a negative vertex ID.
	ErrInvalidVertex = errors.New("core: invalid vertex id")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidMultiplicity indicates a multiplicity outside the accepted range.
	ErrInvalidMultiplicity = errors.New("core: invalid multiplicity")
)

// Edge is a bundle of parallel undirected edges between From and To.
//
// Multiplicity counts the parallel edges; From == To denotes self-loops.
// Edges returned by Graph.Edges are normalized so that From <= To.
type Edge struct {
	From         int
	To           int
	Multiplicity int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adj = make(map[int]map[int]int, n)
			g.deg = make(map[int]int, n)
		}
	}
}

// Graph is an undirected multigraph over int vertex IDs.
//
// adj[u][v] holds the multiplicity of u–v; for u != v the entry is mirrored in
// adj[v][u]. A self-loop on v lives only in adj[v][v]. deg caches degrees
// (loops count twice) so that Degree is O(1) on the hot paths of
// kernelization and branching. edges counts parallel edges individually.
type Graph struct {
	adj   map[int]map[int]int
	deg   map[int]int
	edges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj: make(map[int]map[int]int),
		deg: make(map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
