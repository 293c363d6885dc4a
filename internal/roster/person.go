package roster

import (
	"fmt"
	"strings"
)

// PersonID is the arena handle for a person. The store issues them
// sequentially starting at 1 and never reuses one.
type PersonID uint32

// Assignment records one stint in a department. A person's history is
// append-only; the first entry is always the home department they were
// hired into.
type Assignment struct {
	Department  DepartmentID
	EffectiveOn Date
}

// PersonSpec carries everything needed to enroll a person. First, Last,
// HiredOn, and Department are required; Middle is optional.
type PersonSpec struct {
	First      string
	Middle     string
	Last       string
	HiredOn    Date
	Department DepartmentID
}

// Validate reports every missing or malformed field rather than stopping
// at the first.
func (s PersonSpec) Validate() []error {
	var errs []error
	if strings.TrimSpace(s.First) == "" {
		errs = append(errs, fmt.Errorf("first name is required"))
	}
	if strings.TrimSpace(s.Last) == "" {
		errs = append(errs, fmt.Errorf("last name is required"))
	}
	if s.HiredOn.IsZero() {
		errs = append(errs, fmt.Errorf("date of hire is required"))
	}
	if s.Department == 0 {
		errs = append(errs, fmt.Errorf("department is required"))
	}
	return errs
}

func (s PersonSpec) name() Name {
	return Name{
		First:  strings.TrimSpace(s.First),
		Middle: strings.TrimSpace(s.Middle),
		Last:   strings.TrimSpace(s.Last),
	}
}

// Person is one employee record. Every person belongs to exactly one
// department at a time. All mutation happens through the Store, which is
// why nothing here is settable from outside the package.
type Person struct {
	id         PersonID
	name       Name
	hiredOn    Date
	department DepartmentID
	history    []Assignment
}

// newPerson assumes spec has already passed Validate.
func newPerson(id PersonID, spec PersonSpec) *Person {
	return &Person{
		id:         id,
		name:       spec.name(),
		hiredOn:    spec.HiredOn,
		department: spec.Department,
		history: []Assignment{
			{Department: spec.Department, EffectiveOn: spec.HiredOn},
		},
	}
}

// ID returns the person's arena handle.
func (p *Person) ID() PersonID { return p.id }

// Name returns the person's name.
func (p *Person) Name() Name { return p.name }

// HiredOn returns the date of hire.
func (p *Person) HiredOn() Date { return p.hiredOn }

// Department returns the id of the department the person is currently in.
func (p *Person) Department() DepartmentID { return p.department }

// History returns a copy of the person's assignments in the order they
// were recorded.
func (p *Person) History() []Assignment {
	out := make([]Assignment, len(p.history))
	copy(out, p.history)
	return out
}

// transfer moves the person from the current department's roster onto
// target's, records the assignment, and repoints the person. The caller
// resolves current from the person's own department id, so a failure in
// either roster edit means the store's books disagree with the person and
// the state can no longer be trusted.
func (p *Person) transfer(current, target *Department, on Date) error {
	if target.id == p.department {
		return fmt.Errorf("%s is in %s already: %w", p.name, target.name, ErrSameDepartment)
	}
	if err := current.removeMember(p.name, p.id); err != nil {
		return &CorruptionError{
			Op:     "transfer",
			Detail: fmt.Sprintf("%s (#%d) absent from the roster of their own department %q", p.name, p.id, current.name),
			Err:    err,
		}
	}
	if err := target.addMember(p.name, p.id); err != nil {
		return &CorruptionError{
			Op:     "transfer",
			Detail: fmt.Sprintf("%s (#%d) already on the roster of %q they are moving into", p.name, p.id, target.name),
			Err:    err,
		}
	}
	p.history = append(p.history, Assignment{Department: target.id, EffectiveOn: on})
	p.department = target.id
	return nil
}
