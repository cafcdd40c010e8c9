package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/profile"
	"github.com/katalvlaran/socialgraph/social"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg *config.Config
	log *slog.Logger
	net *social.Network
	out io.Writer
}

func (a *app) printf(format string, args ...any) { fmt.Fprintf(a.out, format, args...) }

func (a *app) println(args ...any) { fmt.Fprintln(a.out, args...) }

// explain maps core errors to the messages shown at the prompt.
func explain(err error) string {
	switch {
	case errors.Is(err, social.ErrDuplicateProfile):
		return "A profile with the same name, email and phone already exists."
	case errors.Is(err, social.ErrProfileNotFound):
		return "Profile not found."
	case errors.Is(err, social.ErrUnknownProfile), errors.Is(err, analysis.ErrUnknownProfile):
		return "Both IDs must exist."
	case errors.Is(err, social.ErrSelfFriendship):
		return "A profile cannot be friends with itself."
	case errors.Is(err, social.ErrAlreadyFriends):
		return "They are already friends."
	case errors.Is(err, social.ErrNotFriends):
		return "They are not friends."
	case errors.Is(err, analysis.ErrNoPath):
		return "No friendship path connects them."
	case errors.Is(err, errInvalidID):
		return "Invalid ID."
	default:
		return "Error: " + err.Error()
	}
}

// showProfile prints p followed by its friends.
func (a *app) showProfile(p profile.Profile) {
	a.printf("ID:    %d\n%s\n", p.ID, p)
	friends := a.net.Friends(p.ID)
	if len(friends) == 0 {
		a.println("Friends: (none)")
		return
	}
	parts := make([]string, len(friends))
	for i, f := range friends {
		parts[i] = fmt.Sprintf("%s (id=%d)", f.Name, f.ID)
	}
	a.println("Friends: " + strings.Join(parts, ", "))
}

// showByName prints every profile named name, or a not-found line.
func (a *app) showByName(name string) {
	matches := a.net.FindByName(name)
	if len(matches) == 0 {
		a.printf("No profile named %q.\n", name)
		return
	}
	for i, p := range matches {
		if i > 0 {
			a.println()
		}
		a.showProfile(p)
	}
}

// showAll prints every profile ascending by id.
func (a *app) showAll() {
	all := a.net.Profiles()
	if len(all) == 0 {
		a.println("No profiles.")
		return
	}
	for _, p := range all {
		a.printf(" - id=%d, name=%s, email=%s, phone=%s\n", p.ID, p.Name, p.Email, p.Phone)
	}
}

// showSuggestions prints ranked suggestions for id, honoring suggest.limit.
func (a *app) showSuggestions(id profile.ID) {
	if _, ok := a.net.FindByID(id); !ok {
		a.println("Profile not found.")
		return
	}
	ranked := a.net.SuggestWithScores(id)
	if limit := a.cfg.Suggest.Limit; limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) == 0 {
		a.println("No friend suggestions.")
		return
	}
	a.println("Suggested friends:")
	for _, s := range ranked {
		p := s.Profile
		a.printf(" - id=%d, name=%s, email=%s, phone=%s (mutual=%d)\n", p.ID, p.Name, p.Email, p.Phone, s.Mutual)
	}
}

// showCommunities prints each connected group of friends on one line.
func (a *app) showCommunities() {
	groups := analysis.Communities(a.net.Snapshot())
	if len(groups) == 0 {
		a.println("No profiles.")
		return
	}
	for i, g := range groups {
		parts := make([]string, len(g))
		for j, p := range g {
			parts[j] = fmt.Sprintf("%s (id=%d)", p.Name, p.ID)
		}
		a.printf("Community %d: %s\n", i+1, strings.Join(parts, ", "))
	}
}
