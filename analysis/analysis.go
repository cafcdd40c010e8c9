// File: analysis.go
// Role: Separation and Communities on top of gonum graph algorithms.

package analysis

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/socialgraph/profile"
	"github.com/katalvlaran/socialgraph/social"
)

// Sentinel errors for analysis queries.
var (
	// ErrUnknownProfile indicates an id that is not present in the snapshot.
	ErrUnknownProfile = errors.New("analysis: unknown profile")

	// ErrNoPath indicates two profiles in different communities.
	ErrNoPath = errors.New("analysis: no friendship path")
)

// build converts snap into an undirected gonum graph.
// Complexity: O(V + E).
func build(snap social.Snapshot) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, p := range snap.Profiles {
		g.AddNode(simple.Node(p.ID))
	}
	for _, f := range snap.Friendships {
		from, to := g.Node(int64(f[0])), g.Node(int64(f[1]))
		if from == nil || to == nil || f[0] == f[1] {
			continue
		}
		g.SetEdge(g.NewEdge(from, to))
	}

	return g
}

// Separation returns the number of friendship hops on a shortest path from
// one profile to another. A profile is 0 hops from itself.
//
// Implementation:
//   - Stage 1: Load the snapshot into a simple.UndirectedGraph.
//   - Stage 2: Validate both ids against the graph (ErrUnknownProfile).
//   - Stage 3: Walk breadth-first from `from` until `to` is reached; the walk
//     depth at that node is the hop count.
//
// Errors:
//   - ErrUnknownProfile: either id is absent from snap.
//   - ErrNoPath: the walk exhausts the component of `from` without reaching `to`.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func Separation(snap social.Snapshot, from, to profile.ID) (int, error) {
	g := build(snap)

	start := g.Node(int64(from))
	if start == nil {
		return 0, fmt.Errorf("%w: id=%d", ErrUnknownProfile, from)
	}
	if g.Node(int64(to)) == nil {
		return 0, fmt.Errorf("%w: id=%d", ErrUnknownProfile, to)
	}

	hops := -1
	var bf traverse.BreadthFirst
	bf.Walk(g, start, func(n graph.Node, depth int) bool {
		if n.ID() == int64(to) {
			hops = depth
			return true
		}
		return false
	})
	if hops < 0 {
		return 0, fmt.Errorf("%w: %d and %d", ErrNoPath, from, to)
	}

	return hops, nil
}

// Communities partitions the snapshot into friendship communities.
// A friendless profile forms a community of one.
// Complexity: O(V log V + E).
func Communities(snap social.Snapshot) [][]profile.Profile {
	byID := make(map[profile.ID]profile.Profile, len(snap.Profiles))
	for _, p := range snap.Profiles {
		byID[p.ID] = p
	}

	components := topo.ConnectedComponents(build(snap))
	out := make([][]profile.Profile, 0, len(components))
	for _, nodes := range components {
		members := make([]profile.Profile, 0, len(nodes))
		for _, n := range nodes {
			members = append(members, byID[profile.ID(n.ID())])
		}
		sort.Sort(profile.ByID(members))
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].ID < out[j][0].ID })

	return out
}
