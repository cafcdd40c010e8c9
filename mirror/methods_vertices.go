// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency cleanup under muEdgeAdj (acquired after muVert).
package mirror

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under muVert write lock, check presence.
//   - Stage 2: If missing, allocate a Vertex and register it.
//
// Behavior highlights:
//   - Adding an existing vertex is a no-op and returns nil.
//   - Adjacency buckets are created lazily by AddEdge, not here.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id int64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every incident edge in both directions.
//
// Implementation:
//   - Stage 1: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 2: Verify vertex presence (ErrVertexNotFound).
//   - Stage 3: Drop outgoing edges id→x, unlinking each from in[x].
//   - Stage 4: Drop incoming edges x→id via the reverse index, unlinking each from out[x].
//   - Stage 5: Delete the vertex record.
//
// Behavior highlights:
//   - Leaves no dangling adjacency references and no empty buckets.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg_in(id) + deg_out(id)), Space O(1).
func (g *Graph) RemoveVertex(id int64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var to, from int64
	for to = range g.out[id] {
		unlinkIn(g, id, to)
		g.edgeCount--
	}
	delete(g.out, id)

	for from = range g.in[id] {
		unlinkOut(g, from, id)
		g.edgeCount--
	}
	delete(g.in, id)

	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]int64, 0, len(g.vertices))
	var id int64
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the in- and out-degree of id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id int64) (in, out int, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}

	return len(g.in[id]), len(g.out[id]), nil
}
