// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Profile entity, identifier type, and data-equality key.

package profile

import (
	"strconv"
	"strings"
)

// ID identifies a profile within one store. IDs start at 1 and are never reused.
type ID int64

// String renders the ID in base 10.
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// Profile is a person record with a stable identifier and mutable display fields.
type Profile struct {
	// ID is assigned by the owning store at creation and never changes.
	ID ID

	// Name is the display name; several profiles may share it.
	Name string

	// Email is optional.
	Email string

	// Phone is optional.
	Phone string
}

// Key is the data-equality tuple of a Profile.
// It is comparable and intended to be used as a map key.
type Key struct {
	Name  string
	Email string
	Phone string
}

// New returns a Profile candidate without an ID (ID == 0) for the given fields.
func New(name, email, phone string) Profile {
	return Profile{Name: name, Email: email, Phone: phone}
}

// Key returns the (Name, Email, Phone) tuple used for duplicate detection.
// Complexity: O(1).
func (p Profile) Key() Key {
	return Key{Name: p.Name, Email: p.Email, Phone: p.Phone}
}

// Equal reports whether p and other are data-equal (IDs are ignored).
func (p Profile) Equal(other Profile) bool { return p.Key() == other.Key() }

// String renders the profile as three labelled lines:
//
//	Name:  Alex
//	Email: alex@example.com
//	Phone: 408-111-2222
func (p Profile) String() string {
	var b strings.Builder
	b.Grow(len(p.Name) + len(p.Email) + len(p.Phone) + 24)
	b.WriteString("Name:  ")
	b.WriteString(p.Name)
	b.WriteString("\nEmail: ")
	b.WriteString(p.Email)
	b.WriteString("\nPhone: ")
	b.WriteString(p.Phone)

	return b.String()
}

// ByID orders profiles by ascending ID. Use with sort.Sort.
type ByID []Profile

func (s ByID) Len() int           { return len(s) }
func (s ByID) Less(i, j int) bool { return s[i].ID < s[j].ID }
func (s ByID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
