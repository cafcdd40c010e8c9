// SPDX-License-Identifier: MIT

// Package profile defines the person record stored by the social network,
// its data-equality key, and an explicit field patch for partial updates.
//
// A Profile carries an immutable ID and three mutable display fields:
//
//	ID     int64   assigned once by the owning store, never reused
//	Name   string  not required to be unique
//	Email  string  may be empty
//	Phone  string  may be empty
//
// Data equality:
//
//	Two profiles are data-equal iff their (Name, Email, Phone) tuples match,
//	regardless of ID. Key() returns that tuple as a comparable value so it can
//	be used directly as a map key by duplicate-detection indices.
//
// Partial updates:
//
//	Patch carries one Field per mutable attribute. A Field is either absent
//	(the zero value, Unset) or present (Set(v)). Apply overwrites an attribute
//	only when its Field is present AND non-empty, so "" never clears a value.
//	PatchFromStrings builds a Patch from raw menu input where "" means "keep".
//
// Profile values are plain structs and are copied on every read from the
// store; mutating a returned Profile never affects indexed state.
package profile
