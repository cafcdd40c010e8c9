// File: snapshot.go
// Role: Consistent read-only copy of the network for analysis layers.

package social

import (
	"sort"

	"github.com/katalvlaran/socialgraph/profile"
)

// Friendship is an undirected pair stored with the lower id first.
type Friendship [2]profile.ID

// Snapshot is a detached copy of the network taken under one read lock.
type Snapshot struct {
	// Profiles holds every live profile, ascending by id.
	Profiles []profile.Profile

	// Friendships holds each friendship once, sorted by (low, high).
	Friendships []Friendship
}

// Snapshot copies the profile set and friendship relation.
// Later mutations of the Network do not affect the returned value.
// Complexity: O(V log V + E log E).
func (n *Network) Snapshot() Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	snap := Snapshot{
		Profiles:    make([]profile.Profile, 0, len(n.store.profiles)),
		Friendships: make([]Friendship, 0),
	}
	for _, p := range n.store.profiles {
		snap.Profiles = append(snap.Profiles, *p)
	}
	sort.Sort(profile.ByID(snap.Profiles))

	for i, set := range n.friends.adj {
		for j := range set {
			if i < j {
				snap.Friendships = append(snap.Friendships, Friendship{i, j})
			}
		}
	}
	sort.Slice(snap.Friendships, func(a, b int) bool {
		x, y := snap.Friendships[a], snap.Friendships[b]
		if x[0] != y[0] {
			return x[0] < y[0]
		}
		return x[1] < y[1]
	})

	return snap
}
