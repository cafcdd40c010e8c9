package social

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/mirror"
)

// CheckInvariants verifies every cross-index invariant of n and, when the
// mirror is a *mirror.Graph, that the mirror matches the adjacency exactly.
func (n *Network) CheckInvariants() error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s := &n.store
	for id, p := range s.profiles {
		if p.ID != id {
			return fmt.Errorf("profiles[%d] has ID %d", id, p.ID)
		}
		if id > s.nextID {
			return fmt.Errorf("id %d exceeds counter %d", id, s.nextID)
		}
		if _, ok := s.names[p.Name][id]; !ok {
			return fmt.Errorf("id %d missing from names[%q]", id, p.Name)
		}
		if _, ok := s.keys[p.Key()][id]; !ok {
			return fmt.Errorf("id %d missing from keys[%v]", id, p.Key())
		}
		if _, ok := n.friends.adj[id]; !ok {
			return fmt.Errorf("id %d has no adjacency entry", id)
		}
	}
	for name, set := range s.names {
		if len(set) == 0 {
			return fmt.Errorf("names[%q] is empty", name)
		}
		for id := range set {
			p, ok := s.profiles[id]
			if !ok || p.Name != name {
				return fmt.Errorf("names[%q] holds stale id %d", name, id)
			}
		}
	}
	for key, set := range s.keys {
		if len(set) == 0 {
			return fmt.Errorf("keys[%v] is empty", key)
		}
		for id := range set {
			p, ok := s.profiles[id]
			if !ok || p.Key() != key {
				return fmt.Errorf("keys[%v] holds stale id %d", key, id)
			}
		}
	}
	for i, set := range n.friends.adj {
		if _, ok := s.profiles[i]; !ok {
			return fmt.Errorf("adjacency entry for dead id %d", i)
		}
		for j := range set {
			if i == j {
				return fmt.Errorf("self friendship on %d", i)
			}
			if _, ok := n.friends.adj[j][i]; !ok {
				return fmt.Errorf("asymmetric friendship %d→%d", i, j)
			}
		}
	}

	g, ok := n.mirror.(*mirror.Graph)
	if !ok {
		return nil
	}
	if g.VertexCount() != len(s.profiles) {
		return fmt.Errorf("mirror has %d vertices, want %d", g.VertexCount(), len(s.profiles))
	}
	directed := 0
	for i, set := range n.friends.adj {
		if !g.HasVertex(int64(i)) {
			return fmt.Errorf("mirror missing vertex %d", i)
		}
		for j := range set {
			directed++
			if !g.HasEdge(int64(i), int64(j)) {
				return fmt.Errorf("mirror missing edge %d→%d", i, j)
			}
		}
	}
	if g.EdgeCount() != directed {
		return fmt.Errorf("mirror has %d edges, want %d", g.EdgeCount(), directed)
	}

	return nil
}
