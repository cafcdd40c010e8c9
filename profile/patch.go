// SPDX-License-Identifier: MIT
//
// File: patch.go
// Role: Explicit present/absent field patch for partial profile updates.
// Policy:
//   - A Field is applied only when Set is true and Value is non-empty.
//   - Apply never touches Profile.ID.

package profile

// Field is one optional attribute of a Patch.
// The zero value is absent.
type Field struct {
	// Value is the new attribute value when Set is true.
	Value string

	// Set marks the field as present in the patch.
	Set bool
}

// Unset is the absent Field.
var Unset = Field{}

// Set returns a present Field carrying v.
func Set(v string) Field { return Field{Value: v, Set: true} }

// applies reports whether the field overwrites the current value.
// Present-but-empty fields are treated as "no change".
func (f Field) applies() bool { return f.Set && f.Value != "" }

// Patch describes a partial update of a Profile's mutable fields.
type Patch struct {
	Name  Field
	Email Field
	Phone Field
}

// PatchFromStrings builds a Patch from raw input where "" means "keep the current value".
//
// Example:
//
//	PatchFromStrings("Alexander", "", "")  // rename only
func PatchFromStrings(name, email, phone string) Patch {
	var p Patch
	if name != "" {
		p.Name = Set(name)
	}
	if email != "" {
		p.Email = Set(email)
	}
	if phone != "" {
		p.Phone = Set(phone)
	}

	return p
}

// Empty reports whether applying the patch can never change a profile.
func (pt Patch) Empty() bool {
	return !pt.Name.applies() && !pt.Email.applies() && !pt.Phone.applies()
}

// Renames reports whether applying the patch to p changes p.Name.
func (pt Patch) Renames(p Profile) bool {
	return pt.Name.applies() && pt.Name.Value != p.Name
}

// Apply returns a copy of p with every applicable field overwritten.
//
// Implementation:
//   - Stage 1: Copy p (value receiver semantics keep the input untouched).
//   - Stage 2: Overwrite Name/Email/Phone where the Field is present and non-empty.
//
// Complexity:
//   - Time O(1), Space O(1).
func (pt Patch) Apply(p Profile) Profile {
	if pt.Name.applies() {
		p.Name = pt.Name.Value
	}
	if pt.Email.applies() {
		p.Email = pt.Email.Value
	}
	if pt.Phone.applies() {
		p.Phone = pt.Phone.Value
	}

	return p
}
