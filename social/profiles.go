// SPDX-License-Identifier: MIT
//
// File: profiles.go
// Role: ProfileStore public surface: AddProfile, FindByID, FindByName,
//       UpdateProfile, RemoveProfile, Profiles.
// Determinism:
//   - FindByName() and Profiles() return profiles sorted by ID asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package social

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socialgraph/profile"
)

// AddProfile creates a profile and indexes it.
//
// Implementation:
//   - Stage 1: Build the candidate and check the duplicate index (ErrDuplicateProfile).
//   - Stage 2: Allocate the next id; register in id map, name index and duplicate index.
//   - Stage 3: Create the empty adjacency set.
//   - Stage 4: Register the mirror vertex.
//
// Behavior highlights:
//   - On failure no id is consumed and no index changes.
//   - Profiles may share a name as long as (name, email, phone) differ.
//
// Returns:
//   - profile.Profile: a copy of the stored profile, including its new ID.
//
// Errors:
//   - ErrDuplicateProfile: a data-equal live profile exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (n *Network) AddProfile(name, email, phone string) (profile.Profile, error) {
	candidate := profile.New(name, email, phone)

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.store.hasKey(candidate.Key()) {
		return profile.Profile{}, fmt.Errorf("%w: name=%q email=%q phone=%q",
			ErrDuplicateProfile, name, email, phone)
	}

	candidate.ID = n.store.allocID()
	p := &candidate
	n.store.insert(p)
	n.friends.addVertex(p.ID)

	n.project("AddVertex", n.mirror.AddVertex(int64(p.ID)), "id", p.ID)
	n.log.Debug("profile added", "id", p.ID, "name", p.Name)

	return *p, nil
}

// FindByID returns a copy of the profile with the given id.
// Complexity: O(1).
func (n *Network) FindByID(id profile.ID) (profile.Profile, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	p, ok := n.store.profiles[id]
	if !ok {
		return profile.Profile{}, false
	}

	return *p, true
}

// FindByName returns every profile named name, ascending by id.
// The result is empty (never nil) when nothing matches.
// Complexity: O(k log k) for k matches.
func (n *Network) FindByName(name string) []profile.Profile {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.store.byIDs(n.store.names[name].sorted())
}

// Profiles returns every live profile, ascending by id.
// Complexity: O(V log V).
func (n *Network) Profiles() []profile.Profile {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]profile.Profile, 0, len(n.store.profiles))
	for _, p := range n.store.profiles {
		out = append(out, *p)
	}
	sort.Sort(profile.ByID(out))

	return out
}

// UpdateProfile applies patch to the profile with the given id.
//
// Implementation:
//   - Stage 1: Look up id (ErrProfileNotFound); nothing is touched before this check.
//   - Stage 2: Inside one reindex transaction evict the old name/key entries,
//     apply the patch, and index the new name/key entries.
//
// Behavior highlights:
//   - The id and every friendship are preserved across renames.
//   - Absent or empty patch fields leave the current value in place.
//   - Updating into a tuple already held by another profile is allowed; both stay
//     live and share one duplicate-index class.
//
// Returns:
//   - profile.Profile: a copy of the updated profile.
//
// Errors:
//   - ErrProfileNotFound: id is not live.
//
// Complexity:
//   - Time O(1), Space O(1).
func (n *Network) UpdateProfile(id profile.ID, patch profile.Patch) (profile.Profile, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	p, ok := n.store.profiles[id]
	if !ok {
		return profile.Profile{}, fmt.Errorf("%w: id=%d", ErrProfileNotFound, id)
	}

	old := p.Name
	n.store.reindex(p, func(p *profile.Profile) { *p = patch.Apply(*p) })
	n.log.Debug("profile updated", "id", id, "old_name", old, "name", p.Name)

	return *p, nil
}

// RemoveProfile deletes a profile and every friendship touching it.
//
// Implementation:
//   - Stage 1: Look up id (ErrProfileNotFound).
//   - Stage 2: Sever every friendship of id (both adjacency sides, both mirror edges).
//   - Stage 3: Drop id from the duplicate index, the name index and the id map.
//   - Stage 4: Remove the mirror vertex (the mirror cascades any leftover edges).
//
// Errors:
//   - ErrProfileNotFound: id is not live.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (n *Network) RemoveProfile(id profile.ID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	p, ok := n.store.profiles[id]
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrProfileNotFound, id)
	}

	severed := n.severAll(id)
	n.store.delete(p)
	n.friends.removeVertex(id)

	n.project("RemoveVertex", n.mirror.RemoveVertex(int64(id)), "id", id)
	n.log.Debug("profile removed", "id", id, "name", p.Name, "severed", severed)

	return nil
}
