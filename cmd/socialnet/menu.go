package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/logging"
	"github.com/katalvlaran/socialgraph/mirror"
	"github.com/katalvlaran/socialgraph/profile"
)

const menuText = `
--- Simple Social Network ---
1. Add profile
2. Show profiles by name
3. Show all profiles
4. Update profile (by ID)
5. Remove profile (by ID)
6. Add friendship (by IDs)
7. Remove friendship (by IDs)
8. Suggest friends (by ID)
9. Show raw graph
10. Degrees of separation (by IDs)
11. Show communities
0. Quit
`

// prompter reads one trimmed line per question.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// ask prints question and returns the next line; ok is false at end of input.
func (p *prompter) ask(question string) (string, bool) {
	io.WriteString(p.out, question)
	if !p.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.sc.Text()), true
}

// runMenu drives the text menu until "0" or end of input.
// Each command runs under its own request id.
func (a *app) runMenu(ctx context.Context, in io.Reader) error {
	p := &prompter{sc: bufio.NewScanner(in), out: a.out}

	for {
		a.println(menuText)
		choice, ok := p.ask("Enter your choice: ")
		if !ok {
			a.println()
			a.println("Goodbye.")
			return p.sc.Err()
		}
		if choice == "0" {
			a.println("Goodbye.")
			return nil
		}

		cctx, _ := logging.NewRequest(ctx)
		a.log.DebugContext(cctx, "menu command", "choice", choice)
		if !a.dispatch(cctx, p, choice) {
			a.println()
			a.println("Goodbye.")
			return p.sc.Err()
		}
		a.println()
	}
}

// dispatch runs one menu command. It returns false when input ran out mid-command.
func (a *app) dispatch(ctx context.Context, p *prompter, choice string) bool {
	switch choice {
	case "1":
		return a.cmdAdd(ctx, p)
	case "2":
		name, ok := p.ask("Enter name to search: ")
		if !ok {
			return false
		}
		a.showByName(name)
	case "3":
		a.showAll()
	case "4":
		return a.cmdUpdate(ctx, p)
	case "5":
		id, ok := a.askID(p, "Enter profile ID to remove: ")
		if !ok || id == 0 {
			return ok
		}
		a.report(ctx, "remove profile", a.net.RemoveProfile(id), "Profile removed.")
	case "6", "7":
		id1, ok := a.askID(p, "First profile ID: ")
		if !ok || id1 == 0 {
			return ok
		}
		id2, ok := a.askID(p, "Second profile ID: ")
		if !ok || id2 == 0 {
			return ok
		}
		if choice == "6" {
			a.report(ctx, "add friendship", a.net.AddFriendship(id1, id2), "Friendship created.")
		} else {
			a.report(ctx, "remove friendship", a.net.RemoveFriendship(id1, id2), "Friendship removed.")
		}
	case "8":
		id, ok := a.askID(p, "Profile ID to suggest friends for: ")
		if !ok || id == 0 {
			return ok
		}
		a.showSuggestions(id)
	case "9":
		a.println("Raw graph:")
		if g, isGraph := a.net.Mirror().(*mirror.Graph); isGraph {
			a.println(g.String())
		} else {
			a.println("(mirror disabled)")
		}
	case "10":
		return a.cmdSeparation(ctx, p)
	case "11":
		a.showCommunities()
	default:
		a.println("Invalid choice, please try again.")
	}

	return true
}

// askID asks for an id. A malformed answer prints "Invalid ID." and yields id 0.
func (a *app) askID(p *prompter, question string) (profile.ID, bool) {
	s, ok := p.ask(question)
	if !ok {
		return 0, false
	}
	id, err := parseID(s)
	if err != nil {
		a.println(explain(err))
		return 0, true
	}
	return id, true
}

// report prints success or the explained error, and logs the outcome.
func (a *app) report(ctx context.Context, op string, err error, success string) {
	if err != nil {
		a.log.InfoContext(ctx, op+" rejected", "error", err)
		a.println(explain(err))
		return
	}
	a.log.InfoContext(ctx, op)
	a.println(success)
}

func (a *app) cmdAdd(ctx context.Context, p *prompter) bool {
	var in profileInput
	var ok bool
	if in.Name, ok = p.ask("Name: "); !ok {
		return false
	}
	if in.Email, ok = p.ask("Email (optional): "); !ok {
		return false
	}
	if in.Phone, ok = p.ask("Phone (optional): "); !ok {
		return false
	}
	if err := in.Validate(); err != nil {
		a.println("Invalid input: " + err.Error())
		return true
	}

	created, err := a.net.AddProfile(in.Name, in.Email, in.Phone)
	if err != nil {
		a.report(ctx, "add profile", err, "")
		return true
	}
	a.log.InfoContext(ctx, "add profile", "id", created.ID)
	a.printf("Created profile with id=%d.\n", created.ID)
	return true
}

func (a *app) cmdUpdate(ctx context.Context, p *prompter) bool {
	id, ok := a.askID(p, "Enter profile ID to update: ")
	if !ok || id == 0 {
		return ok
	}

	var in updateInput
	if in.Name, ok = p.ask("New name (leave blank to keep): "); !ok {
		return false
	}
	if in.Email, ok = p.ask("New email (leave blank to keep): "); !ok {
		return false
	}
	if in.Phone, ok = p.ask("New phone (leave blank to keep): "); !ok {
		return false
	}
	if err := in.Validate(); err != nil {
		a.println("Invalid input: " + err.Error())
		return true
	}

	updated, err := a.net.UpdateProfile(id, in.Patch())
	if err != nil {
		a.report(ctx, "update profile", err, "")
		return true
	}
	a.log.InfoContext(ctx, "update profile", "id", id)
	a.println("Profile updated:")
	a.showProfile(updated)
	return true
}

func (a *app) cmdSeparation(ctx context.Context, p *prompter) bool {
	from, ok := a.askID(p, "First profile ID: ")
	if !ok || from == 0 {
		return ok
	}
	to, ok := a.askID(p, "Second profile ID: ")
	if !ok || to == 0 {
		return ok
	}

	hops, err := analysis.Separation(a.net.Snapshot(), from, to)
	if err != nil {
		a.report(ctx, "separation", err, "")
		return true
	}
	a.printf("Degrees of separation: %d\n", hops)
	return true
}
