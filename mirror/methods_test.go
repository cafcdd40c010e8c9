// SPDX-License-Identifier: MIT
// Package mirror_test verifies mirror.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle rules and sentinel errors.
//   - Anchor the deterministic ordering of Vertices/Edges/Neighbors and String().

package mirror_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/mirror"
)

// TestGraph_AddRemoveVertex VERIFIES AddVertex/HasVertex/RemoveVertex lifecycle rules.
// Implementation:
//   - Stage 1: Add a vertex and assert membership.
//   - Stage 2: Assert duplicate AddVertex is a no-op.
//   - Stage 3: Assert RemoveVertex(missing) returns ErrVertexNotFound.
//   - Stage 4: Remove the vertex and assert absence.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := mirror.NewGraph()

	// Stage 1
	MustNoError(t, g.AddVertex(V1), "AddVertex(1)")
	MustEqualBool(t, g.HasVertex(V1), true, "HasVertex(1) after AddVertex(1)")

	// Stage 2
	MustNoError(t, g.AddVertex(V1), "AddVertex(1) duplicate")
	MustEqualInt(t, g.VertexCount(), 1, "duplicate AddVertex must not change vertex count")

	// Stage 3
	MustErrorIs(t, g.RemoveVertex(VMissing), mirror.ErrVertexNotFound, "RemoveVertex(missing)")

	// Stage 4
	MustNoError(t, g.RemoveVertex(V1), "RemoveVertex(1)")
	MustEqualBool(t, g.HasVertex(V1), false, "HasVertex(1) after RemoveVertex(1)")
}

// TestGraph_AddEdgeConstraints VERIFIES AddEdge rejects loops, unknown endpoints, and parallel edges.
// Implementation:
//   - Stage 1: Self-loop → ErrLoopNotAllowed.
//   - Stage 2: Missing endpoint → ErrVertexNotFound (no auto-creation).
//   - Stage 3: First edge succeeds; a second parallel edge → ErrEdgeExists.
//   - Stage 4: The reverse orientation is a distinct edge and succeeds.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := mirror.NewGraph()
	MustNoError(t, g.AddVertex(V1), "AddVertex(1)")
	MustNoError(t, g.AddVertex(V2), "AddVertex(2)")

	// Stage 1
	MustErrorIs(t, g.AddEdge(V1, V1, Weight1), mirror.ErrLoopNotAllowed, "AddEdge(1,1)")

	// Stage 2
	MustErrorIs(t, g.AddEdge(V1, VMissing, Weight1), mirror.ErrVertexNotFound, "AddEdge(1,missing)")
	MustErrorIs(t, g.AddEdge(VMissing, V1, Weight1), mirror.ErrVertexNotFound, "AddEdge(missing,1)")
	MustEqualBool(t, g.HasVertex(VMissing), false, "AddEdge must not auto-create vertices")

	// Stage 3
	MustNoError(t, g.AddEdge(V1, V2, Weight1), "AddEdge(1,2)")
	MustErrorIs(t, g.AddEdge(V1, V2, Weight1), mirror.ErrEdgeExists, "AddEdge(1,2) second")

	// Stage 4
	MustNoError(t, g.AddEdge(V2, V1, Weight1), "AddEdge(2,1)")
	MustEqualInt(t, g.EdgeCount(), 2, "EdgeCount after both orientations")
}

// TestGraph_RemoveEdge VERIFIES RemoveEdge removes exactly one orientation.
func TestGraph_RemoveEdge(t *testing.T) {
	g := mirror.NewGraph()
	for _, id := range []int64{V1, V2} {
		MustNoError(t, g.AddVertex(id), "AddVertex")
	}
	MustNoError(t, g.AddEdge(V1, V2, Weight1), "AddEdge(1,2)")
	MustNoError(t, g.AddEdge(V2, V1, Weight1), "AddEdge(2,1)")

	MustNoError(t, g.RemoveEdge(V1, V2), "RemoveEdge(1,2)")
	MustEqualBool(t, g.HasEdge(V1, V2), false, "HasEdge(1,2) after removal")
	MustEqualBool(t, g.HasEdge(V2, V1), true, "reverse edge must survive")
	MustErrorIs(t, g.RemoveEdge(V1, V2), mirror.ErrEdgeNotFound, "RemoveEdge(1,2) twice")

	in, out, err := g.Degree(V1)
	MustNoError(t, err, "Degree(1)")
	MustEqualInt(t, in, 1, "in-degree(1)")
	MustEqualInt(t, out, 0, "out-degree(1)")
}

// TestGraph_RemoveVertexCascades VERIFIES incident edges in both directions disappear.
func TestGraph_RemoveVertexCascades(t *testing.T) {
	g := mirror.NewGraph()
	for _, id := range []int64{V1, V2, V3} {
		MustNoError(t, g.AddVertex(id), "AddVertex")
	}
	for _, e := range [][2]int64{{V1, V2}, {V2, V1}, {V2, V3}, {V3, V2}, {V1, V3}} {
		MustNoError(t, g.AddEdge(e[0], e[1], Weight1), "AddEdge")
	}

	MustNoError(t, g.RemoveVertex(V2), "RemoveVertex(2)")

	require.Equal(t, []int64{V1, V3}, g.Vertices())
	require.Equal(t, []mirror.Edge{{From: V1, To: V3, Weight: Weight1}}, g.Edges())
	require.Equal(t, mirror.GraphStats{VertexCount: 2, EdgeCount: 1}, g.Stats())

	_, err := g.Neighbors(V2)
	MustErrorIs(t, err, mirror.ErrVertexNotFound, "Neighbors(removed)")
	_, _, err = g.Degree(V2)
	MustErrorIs(t, err, mirror.ErrVertexNotFound, "Degree(removed)")
}

// TestGraph_DeterministicOrder VERIFIES sorted enumeration and the textual form.
func TestGraph_DeterministicOrder(t *testing.T) {
	g := mirror.NewGraph()
	for _, id := range []int64{V4, V2, V3, V1} {
		MustNoError(t, g.AddVertex(id), "AddVertex")
	}
	for _, e := range [][2]int64{{V3, V1}, {V1, V4}, {V1, V2}} {
		MustNoError(t, g.AddEdge(e[0], e[1], Weight1), "AddEdge")
	}

	require.Equal(t, []int64{1, 2, 3, 4}, g.Vertices())
	nbs, err := g.Neighbors(V1)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 4}, nbs)
	require.Equal(t, "4 Vertices:  1 2 3 4\n3 Edges:  1>2:1 1>4:1 3>1:1", g.String())

	require.Equal(t, "0 Vertices: \n0 Edges: ", mirror.NewGraph().String())
}

// TestDiscard VERIFIES the no-op sink accepts every call.
func TestDiscard(t *testing.T) {
	s := mirror.Discard
	require.NoError(t, s.AddVertex(V1))
	require.NoError(t, s.AddEdge(V1, V1, Weight1))
	require.NoError(t, s.RemoveEdge(V1, V2))
	require.NoError(t, s.RemoveVertex(VMissing))
}
