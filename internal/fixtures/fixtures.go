// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixtures holds sample payload types used by the check runner and
// tests.
package fixtures

// Copyable is a plain value payload; copies are independent.
type Copyable struct {
	Value int
}

// CopyableDerived is a second value type that can be built from a Copyable.
type CopyableDerived struct {
	Value int
}

// DeriveCopyable converts c.
func DeriveCopyable(c Copyable) CopyableDerived {
	return CopyableDerived{Value: c.Value}
}

// Unique owns a heap cell. Copies of a Unique share the cell, so ownership is
// handed over explicitly with Move.
type Unique struct {
	cell *int
}

// NewUnique allocates a cell holding v.
func NewUnique(v int) Unique {
	return Unique{cell: &v}
}

// Valid reports whether u still owns a cell.
func (u Unique) Valid() bool {
	return u.cell != nil
}

// Value returns the owned value, or 0 once moved from.
func (u Unique) Value() int {
	if u.cell == nil {
		return 0
	}
	return *u.cell
}

// Move transfers the cell to the returned Unique and empties u.
func (u *Unique) Move() Unique {
	m := Unique{cell: u.cell}
	u.cell = nil
	return m
}

// UniqueDerived takes over the cell of a Unique.
type UniqueDerived struct {
	cell *int
}

// DeriveUnique moves u's cell into a UniqueDerived.
func DeriveUnique(u *Unique) UniqueDerived {
	return UniqueDerived{cell: u.Move().cell}
}

// Valid reports whether d owns a cell.
func (d UniqueDerived) Valid() bool {
	return d.cell != nil
}

// Value returns the owned value, or 0 if d owns nothing.
func (d UniqueDerived) Value() int {
	if d.cell == nil {
		return 0
	}
	return *d.cell
}
