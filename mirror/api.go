// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshot and textual rendering of the mirror.
// Policy:
//   - No mutation here.
//   - Snapshots are taken per lock phase (vertices, then edges) to avoid holding both.

package mirror

import (
	"strconv"
	"strings"
)

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
}

// Stats produces a snapshot of vertex and edge counts.
//
// Implementation:
//   - Stage 1: Read the vertex count under muVert.
//   - Stage 2: Read the edge count under muEdgeAdj.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	g.muEdgeAdj.RUnlock()

	return stats
}

// String renders the graph as two lines:
//
//	3 Vertices:  1 2 3
//	2 Edges:  1>2:1 2>1:1
//
// Vertices are listed ascending, edges by (From, To) ascending,
// each edge as From>To:Weight.
func (g *Graph) String() string {
	vs := g.Vertices()
	es := g.Edges()

	var b strings.Builder
	b.WriteString(strconv.Itoa(len(vs)))
	b.WriteString(" Vertices: ")
	for _, v := range vs {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(len(es)))
	b.WriteString(" Edges: ")
	for _, e := range es {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(e.From, 10))
		b.WriteByte('>')
		b.WriteString(strconv.FormatInt(e.To, 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(e.Weight, 10))
	}

	return b.String()
}
