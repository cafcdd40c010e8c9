// Package social is the profile/friendship store: a set of mutually
// consistent in-memory indices over profiles and the symmetric friendship
// relation, plus a friend-of-friend suggestion query.
//
// A Network bundles three components behind one sync.RWMutex:
//
//	ProfileStore     id → profile, name → id-set, data-key → id-set, id counter
//	FriendshipGraph  id → set of friend ids (symmetric)
//	SuggestionEngine pure read over the two above
//
// Mutations (AddProfile, UpdateProfile, RemoveProfile, AddFriendship,
// RemoveFriendship) hold the write lock for their whole duration. Reads
// (FindByID, FindByName, Friends, Suggest, Profiles, Stats, Snapshot) hold
// the read lock and may run concurrently with each other.
//
// Invariants maintained after every public call:
//
//   - every live id appears exactly once in id → profile;
//   - id ∈ names[n] ⟺ profiles[id].Name == n, and no name maps to an empty set;
//   - the duplicate index holds one entry per live data-equal class;
//   - j ∈ friends[i] ⟺ i ∈ friends[j];
//   - the mirror vertex set equals the live id set and mirror edge (i,j)
//     exists iff j ∈ friends[i], as long as the sink accepts every call.
//
// Every public operation validates its preconditions before touching any
// index, so a returned error always means "nothing changed". Errors are
// sentinels wrapped with context; match them with errors.Is:
//
//	ErrDuplicateProfile  AddProfile of a data-equal tuple
//	ErrProfileNotFound   UpdateProfile / RemoveProfile of an unknown id
//	ErrUnknownProfile    friendship operation naming an unknown id
//	ErrSelfFriendship    friendship operation with id1 == id2
//	ErrAlreadyFriends    AddFriendship on an existing friendship
//	ErrNotFriends        RemoveFriendship on a missing friendship
//
// The mirror (mirror.Sink) is updated last and never read back. A failing
// sink does not roll back the core mutation; the failure is logged at WARN.
//
// Usage:
//
//	net := social.New(social.WithLogger(logger))
//	alex, _ := net.AddProfile("Alex", "alex@wvc.edu", "408-111-2222")
//	bella, _ := net.AddProfile("Bella", "bella@wvc.edu", "")
//	_ = net.AddFriendship(alex.ID, bella.ID)
//	for _, p := range net.Suggest(alex.ID) { ... }
package social
