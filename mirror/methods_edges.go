// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount/Neighbors,
//       plus adjacency helpers.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
//   - Neighbors() returns target IDs sorted asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock (after muVert read lock for endpoint checks).
//   - Read queries under muEdgeAdj read lock.

package mirror

import "sort"

// AddEdge creates the directed edge from→to with the given weight.
//
// Steps:
//  1. Reject self-loops (ErrLoopNotAllowed).
//  2. Under muVert read lock, require both endpoints (ErrVertexNotFound).
//  3. Under muEdgeAdj write lock, reject an existing from→to edge (ErrEdgeExists).
//  4. Store out[from][to] and mark in[to][from].
//
// Unlike a general-purpose graph, endpoints are never auto-created: the
// vertex set must track live profiles exactly.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, weight int64) error {
	if from == to {
		return ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.out[from][to]; exists {
		return ErrEdgeExists
	}

	ensureAdjacency(g, from, to)
	g.out[from][to] = &Edge{From: from, To: to, Weight: weight}
	g.in[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the directed edge from→to. The reverse edge, if any, is kept.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}
	unlinkOut(g, from, to)
	unlinkIn(g, from, to)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Edges returns copies of all edges sorted by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var e *Edge
	for _, toMap := range g.out {
		for _, e = range toMap {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Neighbors returns the targets of id's outgoing edges in ascending order.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int64) ([]int64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]int64, 0, len(g.out[id]))
	var to int64
	for to = range g.out[id] {
		ids = append(ids, to)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// ensureAdjacency allocates the out[from] and in[to] buckets when missing.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to int64) {
	if g.out[from] == nil {
		g.out[from] = make(map[int64]*Edge)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[int64]struct{})
	}
}

// unlinkOut removes out[from][to] and prunes the bucket when it empties.
// Must be called ONLY under muEdgeAdj write lock.
func unlinkOut(g *Graph, from, to int64) {
	toMap := g.out[from]
	delete(toMap, to)
	if len(toMap) == 0 {
		delete(g.out, from)
	}
}

// unlinkIn removes in[to][from] and prunes the bucket when it empties.
// Must be called ONLY under muEdgeAdj write lock.
func unlinkIn(g *Graph, from, to int64) {
	fromSet := g.in[to]
	delete(fromSet, from)
	if len(fromSet) == 0 {
		delete(g.in, to)
	}
}
