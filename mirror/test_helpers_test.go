// SPDX-License-Identifier: MIT
// Package mirror_test contains test helpers for socialgraph/mirror.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for mirror.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package mirror_test

import (
	"errors"
	"testing"
)

// Common vertex IDs used across mirror tests.
const (
	V1 int64 = 1
	V2 int64 = 2
	V3 int64 = 3
	V4 int64 = 4

	VMissing int64 = 99
)

// Weight1 is the placeholder weight the social core always uses.
const Weight1 int64 = 1

// Common concurrency sizes used across mirror tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
//
// Notes:
//   - Use only for sentinel-style contracts (mirror.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d, want %d", op, got, want)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %t, want %t", op, got, want)
}

// MustNoErrorsFromChan drains errCh and FAILS on the first non-nil error.
//
// Notes:
//   - Goroutines report into errCh instead of calling t.Fatalf themselves.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err != nil {
			t.Fatalf("%s: unexpected error from goroutine: %v", op, err)
		}
	}
}
