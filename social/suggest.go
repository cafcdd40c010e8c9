// File: suggest.go
// Role: SuggestionEngine: friend-of-friend ranking by mutual-friend count.
// Determinism:
//   - Ordered by mutual count desc, then name asc, then id asc.

package social

import (
	"sort"

	"github.com/katalvlaran/socialgraph/profile"
)

// Suggestion is one ranked friend-of-friend candidate.
type Suggestion struct {
	Profile profile.Profile

	// Mutual is the number of id's direct friends who are also friends of Profile.
	Mutual int
}

// Suggest returns friend-of-friend candidates for id, best first.
// See SuggestWithScores for the ranking rules.
func (n *Network) Suggest(id profile.ID) []profile.Profile {
	ranked := n.SuggestWithScores(id)
	out := make([]profile.Profile, len(ranked))
	for i := range ranked {
		out[i] = ranked[i].Profile
	}

	return out
}

// SuggestWithScores ranks every profile exactly two friendship hops from id.
//
// Implementation:
//   - Stage 1: Unknown id → empty result.
//   - Stage 2: For each direct friend f and each friend c of f, skip c == id and
//     direct friends; otherwise count one mutual friend for c.
//   - Stage 3: Drop candidates that are not live profiles.
//   - Stage 4: Sort by (-mutual, name, id).
//
// Returns:
//   - []Suggestion: empty (never nil) when there are no candidates.
//
// Complexity:
//   - Time O(Σ_{f ∈ friends(id)} deg(f) + k log k) for k candidates, Space O(k).
func (n *Network) SuggestWithScores(id profile.ID) []Suggestion {
	n.mu.RLock()
	defer n.mu.RUnlock()

	direct, ok := n.friends.adj[id]
	if !ok {
		return []Suggestion{}
	}

	score := make(map[profile.ID]int)
	for f := range direct {
		for c := range n.friends.adj[f] {
			if c == id {
				continue
			}
			if _, isDirect := direct[c]; isDirect {
				continue
			}
			score[c]++
		}
	}

	out := make([]Suggestion, 0, len(score))
	for c, mutual := range score {
		p, live := n.store.profiles[c]
		if !live {
			continue
		}
		out = append(out, Suggestion{Profile: *p, Mutual: mutual})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Mutual != b.Mutual {
			return a.Mutual > b.Mutual
		}
		if a.Profile.Name != b.Profile.Name {
			return a.Profile.Name < b.Profile.Name
		}
		return a.Profile.ID < b.Profile.ID
	})

	return out
}
