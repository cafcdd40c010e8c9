// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sink contract, Vertex/Edge/Graph types, sentinel errors, constructor.
// Concurrency:
//   - muVert guards the vertex catalog; muEdgeAdj guards out/in adjacency.
//   - Lock order is muVert -> muEdgeAdj on every path that needs both.

package mirror

import (
	"errors"
	"sync"
)

// Sentinel errors for mirror graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("mirror: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("mirror: edge not found")

	// ErrEdgeExists indicates a second edge between the same ordered endpoints.
	ErrEdgeExists = errors.New("mirror: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("mirror: self-loop not allowed")
)

// Sink is the write-only surface the social core drives.
// Implementations must treat RemoveVertex as cascading to incident edges.
type Sink interface {
	AddVertex(id int64) error
	RemoveVertex(id int64) error
	AddEdge(from, to, weight int64) error
	RemoveEdge(from, to int64) error
}

// Vertex is a node of the mirror graph.
type Vertex struct {
	// ID mirrors the profile identifier.
	ID int64
}

// Edge is one directed connection From→To.
type Edge struct {
	From   int64
	To     int64
	Weight int64
}

// Graph is the in-memory directed adjacency list used as the default Sink.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards out, in, edgeCount

	vertices map[int64]*Vertex

	// out[from][to] = edge; in[to][from] marks the reverse direction.
	out map[int64]map[int64]*Edge
	in  map[int64]map[int64]struct{}

	edgeCount int
}

// NewGraph returns an empty mirror graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int64]*Vertex),
		out:      make(map[int64]map[int64]*Edge),
		in:       make(map[int64]map[int64]struct{}),
	}
}

// Discard is a Sink that accepts every call and records nothing.
var Discard Sink = discard{}

type discard struct{}

func (discard) AddVertex(int64) error { return nil }
func (discard) RemoveVertex(int64) error { return nil }
func (discard) AddEdge(_, _, _ int64) error { return nil }
func (discard) RemoveEdge(_, _ int64) error { return nil }

// compile-time contract checks
var (
	_ Sink = (*Graph)(nil)
	_ Sink = discard{}
)
