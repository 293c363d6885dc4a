package roster

import (
	"errors"
	"fmt"
	"maps"
	"sync"
)

// DepartmentRef pairs a department alias with its id. Listings hand these
// out in alias order.
type DepartmentRef struct {
	Alias string
	ID    DepartmentID
}

// PersonRef pairs a person alias with their id. Listings hand these out in
// alias order.
type PersonRef struct {
	Alias string
	ID    PersonID
}

// Store owns every department and person and is the only way to change
// them. Entities live in arenas keyed by id; aliases resolve through the
// canonical maps, and the sorted indices serve ordered listings. The two
// must agree at all times: the maps are authoritative for duplicate
// detection and the indices are checked again on insert, with any
// disagreement unwound before reporting.
//
// A coarse lock covers each operation end to end, so a transfer's edits to
// both departments and the person are never observable half-done.
type Store struct {
	mu sync.RWMutex

	departments map[DepartmentID]*Department
	people      map[PersonID]*Person

	deptAliases   map[string]DepartmentID
	personAliases map[string]PersonID

	deptIndex   index[DepartmentID]
	personIndex index[PersonID]

	// Counters advance only when an operation succeeds; count+1 is the
	// next id issued, so ids stay dense and are never reused.
	departmentCount uint32
	employeeCount   uint32

	now func() Date
}

// Option customizes a Store during construction.
type Option func(*Store)

// WithClock overrides the source of "today", used when a transfer omits
// its effective date.
func WithClock(clock func() Date) Option {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// NewStore builds an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		departments:   map[DepartmentID]*Department{},
		people:        map[PersonID]*Person{},
		deptAliases:   map[string]DepartmentID{},
		personAliases: map[string]PersonID{},
		now:           Today,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateDepartment registers a department under alias. The alias must be
// unused; the display name needs no uniqueness. On any failure nothing is
// recorded and the department counter does not move.
func (s *Store) CreateDepartment(alias, name string) (*Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.deptAliases[alias]; exists {
		return nil, fmt.Errorf("roster: create department %q: %w", alias, ErrAliasInUse)
	}
	id := DepartmentID(s.departmentCount + 1)
	s.deptAliases[alias] = id
	if err := s.deptIndex.insert(alias, id); err != nil {
		delete(s.deptAliases, alias)
		return nil, fmt.Errorf("roster: create department %q: %w", alias, err)
	}
	dept := newDepartment(id, name)
	s.departments[id] = dept
	s.departmentCount = uint32(id)
	return dept, nil
}

// CreatePerson registers a person under alias and enrolls them on their
// home department's roster, seeding history with that first assignment.
// On any failure nothing is recorded and the employee counter does not
// move.
func (s *Store) CreatePerson(alias string, spec PersonSpec) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.personAliases[alias]; exists {
		return nil, fmt.Errorf("roster: create person %q: %w", alias, ErrAliasInUse)
	}
	if errs := spec.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("roster: create person %q: %w", alias, errors.Join(errs...))
	}
	home, ok := s.departments[spec.Department]
	if !ok {
		return nil, fmt.Errorf("roster: create person %q: department #%d: %w", alias, spec.Department, ErrNoSuchDepartment)
	}

	id := PersonID(s.employeeCount + 1)
	person := newPerson(id, spec)
	if err := home.addMember(person.name, id); err != nil {
		// A freshly issued id can only collide if the books are wrong.
		return nil, &CorruptionError{
			Op:     "create person",
			Detail: fmt.Sprintf("fresh id #%d already on the roster of %q", id, home.name),
			Err:    err,
		}
	}
	s.people[id] = person
	s.personAliases[alias] = id
	if err := s.personIndex.insert(alias, id); err != nil {
		delete(s.personAliases, alias)
		delete(s.people, id)
		if rerr := home.removeMember(person.name, id); rerr != nil {
			return nil, &CorruptionError{
				Op:     "create person",
				Detail: fmt.Sprintf("could not unwind the enrollment of #%d in %q", id, home.name),
				Err:    rerr,
			}
		}
		return nil, fmt.Errorf("roster: create person %q: %w", alias, err)
	}
	s.employeeCount = uint32(id)
	return person, nil
}

// TransferPerson moves the person behind personAlias into the department
// behind deptAlias, effective on the given date. A zero date means today.
// Naming the person's current department is refused without recording
// anything.
func (s *Store) TransferPerson(personAlias, deptAlias string, on Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pid, ok := s.personAliases[personAlias]
	if !ok {
		return fmt.Errorf("roster: transfer %q: %w", personAlias, ErrNoSuchPerson)
	}
	person, ok := s.people[pid]
	if !ok {
		return &CorruptionError{
			Op:     "transfer",
			Detail: fmt.Sprintf("alias %q maps to person #%d who is not in the arena", personAlias, pid),
		}
	}
	did, ok := s.deptAliases[deptAlias]
	if !ok {
		return fmt.Errorf("roster: transfer %q to %q: %w", personAlias, deptAlias, ErrNoSuchDepartment)
	}
	target, ok := s.departments[did]
	if !ok {
		return &CorruptionError{
			Op:     "transfer",
			Detail: fmt.Sprintf("alias %q maps to department #%d which is not in the arena", deptAlias, did),
		}
	}
	current, ok := s.departments[person.department]
	if !ok {
		return &CorruptionError{
			Op:     "transfer",
			Detail: fmt.Sprintf("person #%d points at department #%d which is not in the arena", pid, person.department),
		}
	}
	if on.IsZero() {
		on = s.now()
	}
	if err := person.transfer(current, target, on); err != nil {
		return fmt.Errorf("roster: transfer %q to %q: %w", personAlias, deptAlias, err)
	}
	return nil
}

// ListDepartments returns (alias, id) pairs for every department in alias
// order.
func (s *Store) ListDepartments() []DepartmentRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DepartmentRef, 0, s.deptIndex.len())
	for _, entry := range s.deptIndex.entries {
		out = append(out, DepartmentRef{Alias: entry.alias, ID: entry.id})
	}
	return out
}

// ListPeople returns (alias, id) pairs for every person in alias order.
func (s *Store) ListPeople() []PersonRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PersonRef, 0, s.personIndex.len())
	for _, entry := range s.personIndex.entries {
		out = append(out, PersonRef{Alias: entry.alias, ID: entry.id})
	}
	return out
}

// DepartmentsByAlias returns a copy of the canonical alias mapping for
// departments.
func (s *Store) DepartmentsByAlias() map[string]DepartmentID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.deptAliases)
}

// Department resolves an arena id.
func (s *Store) Department(id DepartmentID) (*Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dept, ok := s.departments[id]
	return dept, ok
}

// Person resolves an arena id.
func (s *Store) Person(id PersonID) (*Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	person, ok := s.people[id]
	return person, ok
}

// DepartmentByAlias resolves a department alias.
func (s *Store) DepartmentByAlias(alias string) (*Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.deptAliases[alias]
	if !ok {
		return nil, false
	}
	dept, ok := s.departments[id]
	return dept, ok
}

// PersonByAlias resolves a person alias.
func (s *Store) PersonByAlias(alias string) (*Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.personAliases[alias]
	if !ok {
		return nil, false
	}
	person, ok := s.people[id]
	return person, ok
}

// DepartmentCount returns how many departments have ever been created.
func (s *Store) DepartmentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.departmentCount)
}

// EmployeeCount returns how many people have ever been enrolled.
func (s *Store) EmployeeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.employeeCount)
}
