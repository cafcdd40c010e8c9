package social_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/mirror"
	"github.com/katalvlaran/socialgraph/profile"
	"github.com/katalvlaran/socialgraph/social"
)

// TestMirrorTracksRandomWorkload drives a seeded random op sequence and checks
// every invariant (mirror included) after each step.
func TestMirrorTracksRandomWorkload(t *testing.T) {
	const (
		seed  = 20240611
		steps = 600
	)
	rng := rand.New(rand.NewSource(seed))
	g := mirror.NewGraph()
	net := social.New(social.WithMirror(g))

	pick := func() profile.ID { return profile.ID(rng.Intn(40) + 1) }

	for step := 0; step < steps; step++ {
		switch rng.Intn(6) {
		case 0, 1:
			name := "p" + strconv.Itoa(rng.Intn(10))
			_, _ = net.AddProfile(name, name+"@x.io", strconv.Itoa(rng.Intn(3)))
		case 2:
			_ = net.AddFriendship(pick(), pick())
		case 3:
			_ = net.RemoveFriendship(pick(), pick())
		case 4:
			_, _ = net.UpdateProfile(pick(), profile.PatchFromStrings("p"+strconv.Itoa(rng.Intn(10)), "", ""))
		case 5:
			_ = net.RemoveProfile(pick())
		}
		require.NoError(t, net.CheckInvariants(), "step %d", step)
	}
}

// failingSink rejects every call.
type failingSink struct{ calls int }

var errSinkDown = errors.New("sink down")

func (f *failingSink) AddVertex(int64) error { f.calls++; return errSinkDown }
func (f *failingSink) RemoveVertex(int64) error { f.calls++; return errSinkDown }
func (f *failingSink) AddEdge(int64, int64, int64) error { f.calls++; return errSinkDown }
func (f *failingSink) RemoveEdge(int64, int64) error { f.calls++; return errSinkDown }

func TestMirrorFailureIsLoggedNotSurfaced(t *testing.T) {
	var buf bytes.Buffer
	sink := &failingSink{}
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	net := social.New(social.WithMirror(sink), social.WithLogger(log))

	a, err := net.AddProfile("A", "", "")
	require.NoError(t, err)
	b, err := net.AddProfile("B", "", "")
	require.NoError(t, err)
	require.NoError(t, net.AddFriendship(a.ID, b.ID))
	require.NoError(t, net.RemoveProfile(a.ID))

	// 2 AddVertex + 2 AddEdge + 2 RemoveEdge + 1 RemoveVertex.
	require.Equal(t, 7, sink.calls)
	require.Contains(t, buf.String(), "mirror projection failed")
	require.Contains(t, buf.String(), "op=AddEdge")
	require.Contains(t, buf.String(), "error=\"sink down\"")
	require.Empty(t, net.Friends(b.ID))
	require.NoError(t, net.CheckInvariants())
}

func TestDiscardMirror(t *testing.T) {
	net := social.New(social.WithMirror(mirror.Discard))
	a, err := net.AddProfile("A", "", "")
	require.NoError(t, err)
	b, err := net.AddProfile("B", "", "")
	require.NoError(t, err)
	require.NoError(t, net.AddFriendship(a.ID, b.ID))
	require.True(t, net.AreFriends(a.ID, b.ID))
	require.Equal(t, mirror.Discard, net.Mirror())
}

func TestNilOptionsIgnored(t *testing.T) {
	net := social.New(social.WithMirror(nil), social.WithLogger(nil))
	_, ok := net.Mirror().(*mirror.Graph)
	require.True(t, ok)
	_, err := net.AddProfile("A", "", "")
	require.NoError(t, err)
}
