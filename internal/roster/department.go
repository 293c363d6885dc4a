package roster

import (
	"cmp"
	"fmt"
	"slices"
)

// DepartmentID is the arena handle for a department. The store issues them
// sequentially starting at 1 and never reuses one.
type DepartmentID uint32

// member is one roster entry. Carrying the person id alongside the name
// keeps two people with identical names distinct.
type member struct {
	name   Name
	person PersonID
}

func compareMembers(a, b member) int {
	if c := a.name.Compare(b.name); c != 0 {
		return c
	}
	return cmp.Compare(a.person, b.person)
}

// Department groups people under a display name. Display names are not
// unique; the alias index owns uniqueness. The roster stays sorted by
// (last name, first name, person id) across every mutation, so reads never
// re-sort.
type Department struct {
	id     DepartmentID
	name   string
	roster []member
}

func newDepartment(id DepartmentID, name string) *Department {
	return &Department{id: id, name: name}
}

// ID returns the department's arena handle.
func (d *Department) ID() DepartmentID { return d.id }

// Name returns the display name.
func (d *Department) Name() string { return d.name }

// Headcount returns how many people are on the roster.
func (d *Department) Headcount() int { return len(d.roster) }

// Members returns the person ids on the roster in roster order.
func (d *Department) Members() []PersonID {
	out := make([]PersonID, len(d.roster))
	for i, m := range d.roster {
		out[i] = m.person
	}
	return out
}

// String renders the department the way listings show it.
func (d *Department) String() string {
	return fmt.Sprintf("Dept. #%d: %s, %d employees", d.id, d.name, len(d.roster))
}

// addMember inserts at the sort position found by binary search. Inserting
// an entry the roster already holds is refused without changing anything.
func (d *Department) addMember(name Name, id PersonID) error {
	entry := member{name: name, person: id}
	pos, found := slices.BinarySearchFunc(d.roster, entry, compareMembers)
	if found {
		return fmt.Errorf("%s (#%d) in %q: %w", name, id, d.name, ErrAlreadyListed)
	}
	d.roster = slices.Insert(d.roster, pos, entry)
	return nil
}

// removeMember deletes the exact (name, id) entry. Removing an entry the
// roster does not hold is refused without changing anything.
func (d *Department) removeMember(name Name, id PersonID) error {
	entry := member{name: name, person: id}
	pos, found := slices.BinarySearchFunc(d.roster, entry, compareMembers)
	if !found {
		return fmt.Errorf("%s (#%d) in %q: %w", name, id, d.name, ErrNotListed)
	}
	d.roster = slices.Delete(d.roster, pos, pos+1)
	return nil
}
