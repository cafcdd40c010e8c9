package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and stdin script, returning stdout and stderr.
func run(t *testing.T, script string, args ...string) (string, string) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(script))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.Execute())

	return stdout.String(), stderr.String()
}

// lines joins menu answers into a stdin script.
func lines(answers ...string) string { return strings.Join(answers, "\n") + "\n" }

func TestMenuSession(t *testing.T) {
	script := lines(
		"1", "Alex", "alex@wvc.edu", "408-111-2222",
		"1", "Bella", "", "",
		"1", "Carlos", "", "",
		"1", "Diana", "", "",
		"1", "Alex", "alex@wvc.edu", "408-111-2222", // duplicate
		"6", "1", "2",
		"6", "1", "3",
		"6", "2", "4",
		"6", "3", "4",
		"6", "1", "1", // self
		"6", "1", "2", // again
		"8", "1",
		"10", "1", "4",
		"2", "Alex",
		"4", "1", "Alexander", "", "",
		"2", "Alex",
		"9",
		"5", "2",
		"7", "1", "2",
		"11",
		"3",
		"0",
	)
	out, _ := run(t, script)

	for _, want := range []string{
		"Created profile with id=1.",
		"Created profile with id=4.",
		"A profile with the same name, email and phone already exists.",
		"Friendship created.",
		"A profile cannot be friends with itself.",
		"They are already friends.",
		"Suggested friends:\n - id=4, name=Diana, email=, phone= (mutual=2)",
		"Degrees of separation: 2",
		"Name:  Alex\nEmail: alex@wvc.edu\nPhone: 408-111-2222\nFriends: Bella (id=2), Carlos (id=3)",
		"Profile updated:",
		`No profile named "Alex".`,
		"4 Vertices:  1 2 3 4",
		"Profile removed.",
		"Both IDs must exist.",
		"Community 1: Alexander (id=1), Carlos (id=3), Diana (id=4)",
		" - id=1, name=Alexander, email=alex@wvc.edu, phone=408-111-2222",
		"Goodbye.",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "id=5")
}

func TestMenuRejectsBadInput(t *testing.T) {
	out, _ := run(t, lines(
		"1", "Eve", "not-an-email", "",
		"1", "", "", "",
		"5", "abc",
		"4", "7", "", "", "",
		"42",
		"3",
		"0",
	), "menu")

	assert.Contains(t, out, "Invalid input: Email is not a valid email address")
	assert.Contains(t, out, "Invalid input: Name is required")
	assert.Contains(t, out, "Invalid ID.")
	assert.Contains(t, out, "Profile not found.")
	assert.Contains(t, out, "Invalid choice, please try again.")
	assert.Contains(t, out, "No profiles.")
	assert.NotContains(t, out, "Created profile")
}

func TestMenuEndOfInput(t *testing.T) {
	out, _ := run(t, lines("1", "Half"))
	assert.True(t, strings.HasSuffix(out, "Goodbye.\n"), out)
}

func TestSuggestLimitFlag(t *testing.T) {
	script := lines(
		"1", "Me", "", "",
		"1", "F", "", "",
		"1", "A", "", "",
		"1", "B", "", "",
		"6", "1", "2",
		"6", "2", "3",
		"6", "2", "4",
		"8", "1",
		"0",
	)
	out, _ := run(t, script, "--suggest-limit=1")
	assert.Contains(t, out, " - id=3, name=A")
	assert.NotContains(t, out, " - id=4, name=B")
}

func TestDebugLogsCarryRequestID(t *testing.T) {
	_, logs := run(t, lines("3", "0"), "--log-level=debug")
	assert.Contains(t, logs, "menu command | req=")
	assert.Contains(t, logs, "choice=3")
}

func TestDemo(t *testing.T) {
	out, _ := run(t, "", "demo")

	assert.Contains(t, out, "1. Creating Profiles")
	assert.Contains(t, out, "  id=2: Alex, alex2@wvc.edu, 650-222-3333")
	assert.Contains(t, out, "Friends of Alex (id=1):\n  -> Bella (id=3)\n  -> Carlos (id=4)")
	assert.Contains(t, out, "Suggested friends for Alex (id=1):\n  -> Diana (id=5, mutual=2)")
	assert.Contains(t, out, "Name:  Alexander\nEmail: alexander@wvc.edu\nPhone: 408-111-2222")
	assert.Contains(t, out, "Current friends of Alexander (id=1) after removal:\n  -> Carlos (id=4)\n")
	assert.NotContains(t, out, "name=Bella")
	assert.Contains(t, out, "Demo complete.")
}
