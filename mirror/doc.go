// Package mirror provides the auxiliary directed graph that shadows the
// friendship relation of a social network.
//
// The social core owns the canonical adjacency. The mirror is a derived,
// best-effort projection that the core writes to and never reads back:
//
//	social.Network ──AddVertex/RemoveVertex/AddEdge/RemoveEdge──▶ mirror.Sink
//
// Every undirected friendship {i,j} is projected as the directed pair
// i→j and j→i, each with the placeholder weight 1.
//
// Sink:
//
//	AddVertex(id int64) error              // idempotent
//	RemoveVertex(id int64) error           // cascades incident edges
//	AddEdge(from, to, weight int64) error  // one directed edge
//	RemoveEdge(from, to int64) error       // one directed edge
//
// Graph is the default in-memory Sink: a thread-safe adjacency list with
// separate sync.RWMutex locks for the vertex catalog (muVert) and the
// adjacency maps (muEdgeAdj), always acquired in that order.
//
//	out[from][to] = *Edge     // outgoing adjacency, O(1) edge lookup
//	in[to][from]  = struct{}  // reverse index, O(deg) vertex removal
//
// Determinism:
//
//	Vertices(), Neighbors() return ascending IDs; Edges() is sorted by (From, To).
//	String() renders a two-line debug form,
//	e.g. "3 Vertices:  1 2 3\n2 Edges:  1>2:1 2>1:1".
//
// Errors:
//
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrEdgeExists      – parallel edge (multi-edges are not supported)
//	ErrLoopNotAllowed  – from == to
//
// Discard is a Sink that accepts and forgets every call.
package mirror
