package main

import (
	"context"
	"strings"

	"github.com/katalvlaran/socialgraph/logging"
	"github.com/katalvlaran/socialgraph/profile"
)

func (a *app) header(title string) {
	rule := strings.Repeat("=", 60)
	a.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

func (a *app) listFriends(id profile.ID) {
	for _, f := range a.net.Friends(id) {
		a.printf("  -> %s (id=%d)\n", f.Name, f.ID)
	}
}

// runDemo walks through creating, linking, updating and removing profiles.
func (a *app) runDemo(ctx context.Context) error {
	ctx, _ = logging.NewRequest(ctx)
	a.log.InfoContext(ctx, "demo started")

	a.header("1. Creating Profiles")
	seed := []profile.Key{
		{Name: "Alex", Email: "alex@wvc.edu", Phone: "408-111-2222"},
		{Name: "Alex", Email: "alex2@wvc.edu", Phone: "650-222-3333"},
		{Name: "Bella", Email: "bella@wvc.edu", Phone: "415-333-4444"},
		{Name: "Carlos", Email: "carlos@wvc.edu", Phone: "408-444-5555"},
		{Name: "Diana", Email: "diana@wvc.edu", Phone: "408-555-6666"},
	}
	created := make([]profile.Profile, len(seed))
	for i, k := range seed {
		p, err := a.net.AddProfile(k.Name, k.Email, k.Phone)
		if err != nil {
			return err
		}
		created[i] = p
	}
	alex, bella, carlos, diana := created[0], created[2], created[3], created[4]

	a.println("Profiles created:")
	for _, p := range a.net.Profiles() {
		a.printf("  id=%d: %s, %s, %s\n", p.ID, p.Name, p.Email, p.Phone)
	}

	a.header("2. Creating Friendships")
	for _, pair := range [][2]profile.ID{
		{alex.ID, bella.ID},
		{alex.ID, carlos.ID},
		{bella.ID, diana.ID},
		{carlos.ID, diana.ID},
	} {
		if err := a.net.AddFriendship(pair[0], pair[1]); err != nil {
			return err
		}
	}
	a.printf("\nFriends of Alex (id=%d):\n", alex.ID)
	a.listFriends(alex.ID)
	a.printf("\nFriends of Bella (id=%d):\n", bella.ID)
	a.listFriends(bella.ID)

	a.header("3. Friend Suggestions")
	a.printf("Suggested friends for Alex (id=%d):\n", alex.ID)
	suggestions := a.net.SuggestWithScores(alex.ID)
	if len(suggestions) == 0 {
		a.println("  (no suggestions)")
	}
	for _, s := range suggestions {
		a.printf("  -> %s (id=%d, mutual=%d)\n", s.Profile.Name, s.Profile.ID, s.Mutual)
	}

	a.header("4. Updating a Profile")
	a.println("Updating Alex's name to 'Alexander' and email...")
	if _, err := a.net.UpdateProfile(alex.ID, profile.PatchFromStrings("Alexander", "alexander@wvc.edu", "")); err != nil {
		return err
	}
	a.println("New profile details:")
	a.showByName("Alexander")

	a.header("5. Removing a Profile")
	a.printf("Removing Bella (id=%d)...\n", bella.ID)
	if err := a.net.RemoveProfile(bella.ID); err != nil {
		return err
	}
	a.printf("\nCurrent friends of Alexander (id=%d) after removal:\n", alex.ID)
	a.listFriends(alex.ID)

	a.header("6. Final State of All Profiles")
	a.showAll()

	a.println("\nDemo complete.")
	a.log.InfoContext(ctx, "demo finished", "profiles", a.net.Len())
	return nil
}
