// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Network type, options, sentinel errors, constructor, stats snapshot.
// Concurrency:
//   - mu guards every index; the mirror has its own locks and is only called under mu.Lock.

package social

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/katalvlaran/socialgraph/mirror"
	"github.com/katalvlaran/socialgraph/profile"
)

// Sentinel errors for network operations.
var (
	// ErrDuplicateProfile indicates AddProfile of a tuple data-equal to a live profile.
	ErrDuplicateProfile = errors.New("social: duplicate profile")

	// ErrProfileNotFound indicates UpdateProfile/RemoveProfile of an unknown id.
	ErrProfileNotFound = errors.New("social: profile not found")

	// ErrUnknownProfile indicates a friendship operation naming an id with no live profile.
	ErrUnknownProfile = errors.New("social: unknown profile")

	// ErrSelfFriendship indicates a friendship operation with id1 == id2.
	ErrSelfFriendship = errors.New("social: profile cannot befriend itself")

	// ErrAlreadyFriends indicates AddFriendship on an existing friendship.
	ErrAlreadyFriends = errors.New("social: already friends")

	// ErrNotFriends indicates RemoveFriendship on a missing friendship.
	ErrNotFriends = errors.New("social: not friends")
)

// mirrorWeight is the placeholder weight of every mirror edge.
const mirrorWeight int64 = 1

// Option configures a Network before first use.
type Option func(n *Network)

// WithMirror replaces the default in-memory mirror graph with sink.
// A nil sink is ignored.
func WithMirror(sink mirror.Sink) Option {
	return func(n *Network) {
		if sink != nil {
			n.mirror = sink
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// Network is the profile/friendship store.
// The zero value is not usable; construct with New.
type Network struct {
	mu sync.RWMutex

	store   profileStore
	friends friendshipGraph

	mirror mirror.Sink
	log    *slog.Logger
}

// New creates an empty Network.
// By default the mirror is a fresh *mirror.Graph and logging is discarded.
// Complexity: O(1).
func New(opts ...Option) *Network {
	n := &Network{
		store:   newProfileStore(),
		friends: newFriendshipGraph(),
		mirror:  mirror.NewGraph(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Mirror returns the sink the network projects into.
// The core never reads it; callers may (for debugging or visualization).
func (n *Network) Mirror() mirror.Sink { return n.mirror }

// Stats is a read-only snapshot of index sizes.
type Stats struct {
	// Profiles is the number of live profiles.
	Profiles int

	// Names is the number of distinct names in the name index.
	Names int

	// DuplicateKeys is the number of data-equal classes in the duplicate index.
	DuplicateKeys int

	// Friendships is the number of undirected friendships.
	Friendships int

	// NextID is the id the next successful AddProfile will assign.
	NextID profile.ID
}

// Stats returns a consistent snapshot of index sizes.
// Complexity: O(V) for the friendship count.
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Stats{
		Profiles:      len(n.store.profiles),
		Names:         len(n.store.names),
		DuplicateKeys: len(n.store.keys),
		Friendships:   n.friends.edgeCount(),
		NextID:        n.store.nextID + 1,
	}
}

// Len returns the number of live profiles.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.store.profiles)
}

// project reports a failed mirror call. The core state is already committed.
func (n *Network) project(op string, err error, attrs ...any) {
	if err == nil {
		return
	}
	n.log.Warn("mirror projection failed", append([]any{"op", op, "error", err}, attrs...)...)
}
