// File: friendships.go
// Role: FriendshipGraph: symmetric adjacency and its public surface.
// Determinism:
//   - Friends() returns profiles sorted by ID asc.
// Concurrency:
//   - friendshipGraph helpers never lock; Network methods hold mu.

package social

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/profile"
)

// friendshipGraph is the canonical symmetric adjacency: adj[i] holds j iff adj[j] holds i.
// Every live profile has an entry, possibly empty.
type friendshipGraph struct {
	adj map[profile.ID]idSet
}

func newFriendshipGraph() friendshipGraph {
	return friendshipGraph{adj: make(map[profile.ID]idSet)}
}

func (g *friendshipGraph) addVertex(id profile.ID) { g.adj[id] = make(idSet) }

func (g *friendshipGraph) removeVertex(id profile.ID) { delete(g.adj, id) }

func (g *friendshipGraph) adjacent(a, b profile.ID) bool {
	_, ok := g.adj[a][b]
	return ok
}

// link inserts the symmetric pair. Callers have validated both ids.
func (g *friendshipGraph) link(a, b profile.ID) {
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// unlink removes the symmetric pair.
func (g *friendshipGraph) unlink(a, b profile.ID) {
	delete(g.adj[a], b)
	delete(g.adj[b], a)
}

// edgeCount returns the number of undirected friendships.
// Complexity: O(V).
func (g *friendshipGraph) edgeCount() int {
	total := 0
	for _, set := range g.adj {
		total += len(set)
	}

	return total / 2
}

// checkPair validates two ids for a friendship operation.
func (n *Network) checkPair(id1, id2 profile.ID) error {
	for _, id := range [2]profile.ID{id1, id2} {
		if _, ok := n.store.profiles[id]; !ok {
			return fmt.Errorf("%w: id=%d", ErrUnknownProfile, id)
		}
	}
	if id1 == id2 {
		return fmt.Errorf("%w: id=%d", ErrSelfFriendship, id1)
	}

	return nil
}

// AddFriendship creates the mutual friendship {id1, id2}.
//
// Implementation:
//   - Stage 1: Both ids must be live (ErrUnknownProfile) and distinct (ErrSelfFriendship).
//   - Stage 2: Reject an existing friendship (ErrAlreadyFriends).
//   - Stage 3: Insert id2 into friends[id1] and id1 into friends[id2].
//   - Stage 4: Add mirror edges id1→id2 and id2→id1 with weight 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func (n *Network) AddFriendship(id1, id2 profile.ID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.checkPair(id1, id2); err != nil {
		return err
	}
	if n.friends.adjacent(id1, id2) {
		return fmt.Errorf("%w: %d and %d", ErrAlreadyFriends, id1, id2)
	}

	n.friends.link(id1, id2)

	n.project("AddEdge", n.mirror.AddEdge(int64(id1), int64(id2), mirrorWeight), "from", id1, "to", id2)
	n.project("AddEdge", n.mirror.AddEdge(int64(id2), int64(id1), mirrorWeight), "from", id2, "to", id1)
	n.log.Debug("friendship added", "id1", id1, "id2", id2)

	return nil
}

// RemoveFriendship deletes the mutual friendship {id1, id2}.
//
// Errors:
//   - ErrUnknownProfile: either id is not live.
//   - ErrSelfFriendship: id1 == id2.
//   - ErrNotFriends: the two profiles are not friends.
//
// Complexity:
//   - Time O(1), Space O(1).
func (n *Network) RemoveFriendship(id1, id2 profile.ID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.checkPair(id1, id2); err != nil {
		return err
	}
	if !n.friends.adjacent(id1, id2) {
		return fmt.Errorf("%w: %d and %d", ErrNotFriends, id1, id2)
	}

	n.friends.unlink(id1, id2)

	n.project("RemoveEdge", n.mirror.RemoveEdge(int64(id1), int64(id2)), "from", id1, "to", id2)
	n.project("RemoveEdge", n.mirror.RemoveEdge(int64(id2), int64(id1)), "from", id2, "to", id1)
	n.log.Debug("friendship removed", "id1", id1, "id2", id2)

	return nil
}

// AreFriends reports whether id1 and id2 are friends.
// Complexity: O(1).
func (n *Network) AreFriends(id1, id2 profile.ID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.friends.adjacent(id1, id2)
}

// Friends returns the friends of id, ascending by id.
// The result is empty when id is unknown or friendless.
// Complexity: O(d log d).
func (n *Network) Friends(id profile.ID) []profile.Profile {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.store.byIDs(n.friends.adj[id].sorted())
}

// severAll removes every friendship touching id, both adjacency sides and both
// mirror edges per friendship, and returns how many were removed.
// Used only by RemoveProfile; the caller holds mu.Lock.
// Complexity: O(deg(id)).
func (n *Network) severAll(id profile.ID) int {
	peers := n.friends.adj[id].sorted()
	for _, j := range peers {
		n.friends.unlink(id, j)
		n.project("RemoveEdge", n.mirror.RemoveEdge(int64(id), int64(j)), "from", id, "to", j)
		n.project("RemoveEdge", n.mirror.RemoveEdge(int64(j), int64(id)), "from", j, "to", id)
	}

	return len(peers)
}
