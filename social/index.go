// File: index.go
// Role: ProfileStore indices and the reindex transaction.
// Policy:
//   - Helpers here never lock; callers hold Network.mu.
//   - Secondary indices keyed by mutable fields (names, keys) are only ever
//     changed through insert/evict, and mutations of identity fields only
//     through reindex.

package social

import (
	"sort"

	"github.com/katalvlaran/socialgraph/profile"
)

// idSet is a set of profile ids.
type idSet map[profile.ID]struct{}

// sorted returns the members in ascending order.
func (s idSet) sorted() []profile.ID {
	ids := make([]profile.ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// profileStore owns the id space and every profile index.
//
//	profiles[id]   = *Profile (canonical record)
//	names[name]    = ids whose Name == name
//	keys[key]      = ids whose Key() == key; one entry per data-equal class
//	nextID         = last assigned id (monotonic, never reused)
type profileStore struct {
	profiles map[profile.ID]*profile.Profile
	names    map[string]idSet
	keys     map[profile.Key]idSet
	nextID   profile.ID
}

func newProfileStore() profileStore {
	return profileStore{
		profiles: make(map[profile.ID]*profile.Profile),
		names:    make(map[string]idSet),
		keys:     make(map[profile.Key]idSet),
	}
}

// hasKey reports whether a live profile is data-equal to k.
// Complexity: O(1).
func (s *profileStore) hasKey(k profile.Key) bool { return len(s.keys[k]) > 0 }

// allocID reserves the next id. Called only after validation has passed.
func (s *profileStore) allocID() profile.ID {
	s.nextID++
	return s.nextID
}

// insert registers p in every index.
// Complexity: O(1) amortized.
func (s *profileStore) insert(p *profile.Profile) {
	s.profiles[p.ID] = p
	s.index(p)
}

// delete removes p from every index.
// Complexity: O(1).
func (s *profileStore) delete(p *profile.Profile) {
	s.evict(p)
	delete(s.profiles, p.ID)
}

// index adds p under its current name and key.
func (s *profileStore) index(p *profile.Profile) {
	addToSet(s.names, p.Name, p.ID)
	addToSet(s.keys, p.Key(), p.ID)
}

// evict removes p from the buckets of its current name and key,
// pruning buckets that become empty.
func (s *profileStore) evict(p *profile.Profile) {
	removeFromSet(s.names, p.Name, p.ID)
	removeFromSet(s.keys, p.Key(), p.ID)
}

// reindex runs mutate on p inside an index update transaction:
//
//  1. evict p from the name and key indices under its old fields;
//  2. mutate p in place (fields only; the id is restored if touched);
//  3. index p under its new fields.
//
// Every mutator of Name, Email or Phone must go through reindex so that no
// secondary index ever holds a stale key.
//
// Complexity: O(1) plus the cost of mutate.
func (s *profileStore) reindex(p *profile.Profile, mutate func(*profile.Profile)) {
	id := p.ID
	s.evict(p)
	mutate(p)
	p.ID = id
	s.index(p)
}

// byIDs copies the profiles for ids, skipping ids that are not live.
func (s *profileStore) byIDs(ids []profile.ID) []profile.Profile {
	out := make([]profile.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out = append(out, *p)
		}
	}

	return out
}

func addToSet[K comparable](m map[K]idSet, k K, id profile.ID) {
	set, ok := m[k]
	if !ok {
		set = make(idSet)
		m[k] = set
	}
	set[id] = struct{}{}
}

func removeFromSet[K comparable](m map[K]idSet, k K, id profile.ID) {
	set, ok := m[k]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(m, k)
	}
}
