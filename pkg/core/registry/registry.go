package registry

import (
	"fmt"
	"sort"

	"github.com/lmoretti/vaxweek/pkg/core/ages"
	"github.com/lmoretti/vaxweek/pkg/core/model"
)

// Registry holds every registered person and hub for one planning session.
// People and hubs live for the process lifetime; only allocation state is
// mutable, and only through the allocation engine or ResetAllocations.
type Registry struct {
	currentYear int
	people      map[string]*model.Person
	hubs        map[string]*model.Hub
}

// New creates an empty registry. Ages are computed against currentYear.
func New(currentYear int) *Registry {
	return &Registry{
		currentYear: currentYear,
		people:      make(map[string]*model.Person),
		hubs:        make(map[string]*model.Hub),
	}
}

// CurrentYear returns the year ages are computed against.
func (r *Registry) CurrentYear() int {
	return r.currentYear
}

// AddPerson registers a new person keyed by SSN.
func (r *Registry) AddPerson(firstName, lastName, ssn string, birthYear int) error {
	if _, ok := r.people[ssn]; ok {
		return fmt.Errorf("%w: person %q already registered", model.ErrDuplicateKey, ssn)
	}
	r.people[ssn] = model.NewPerson(ssn, firstName, lastName, birthYear)
	return nil
}

// CountPeople returns the number of registered people.
func (r *Registry) CountPeople() int {
	return len(r.people)
}

// Person looks up a person by SSN.
func (r *Registry) Person(ssn string) (*model.Person, error) {
	p, ok := r.people[ssn]
	if !ok {
		return nil, fmt.Errorf("%w: person %q", model.ErrNotFound, ssn)
	}
	return p, nil
}

// Age returns the person's age, derived from the registry's current year.
func (r *Registry) Age(ssn string) (int, error) {
	p, err := r.Person(ssn)
	if err != nil {
		return 0, err
	}
	return p.AgeIn(r.currentYear), nil
}

// People returns all people sorted ascending by SSN. The sorted order is
// the engine's tie-break among equally eligible people, which makes
// allocation runs reproducible.
func (r *Registry) People() []*model.Person {
	out := make([]*model.Person, 0, len(r.people))
	for _, p := range r.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SSN < out[j].SSN })
	return out
}

// PeopleInInterval returns the SSNs of people whose age falls in the
// interval, ascending by SSN.
func (r *Registry) PeopleInInterval(iv ages.Interval) []string {
	var ssns []string
	for _, p := range r.People() {
		if iv.Contains(p.AgeIn(r.currentYear)) {
			ssns = append(ssns, p.SSN)
		}
	}
	return ssns
}

// DefineHub registers a new vaccination hub.
func (r *Registry) DefineHub(name string) error {
	if _, ok := r.hubs[name]; ok {
		return fmt.Errorf("%w: hub %q already defined", model.ErrDuplicateKey, name)
	}
	r.hubs[name] = model.NewHub(name)
	return nil
}

// Hub looks up a hub by name.
func (r *Registry) Hub(name string) (*model.Hub, error) {
	h, ok := r.hubs[name]
	if !ok {
		return nil, fmt.Errorf("%w: hub %q", model.ErrNotFound, name)
	}
	return h, nil
}

// HubNames returns the hub names in ascending order. This is the fixed
// hub processing order of the week allocation.
func (r *Registry) HubNames() []string {
	names := make([]string, 0, len(r.hubs))
	for name := range r.hubs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetStaff configures the staffing of a hub. Every count must be
// greater than zero.
func (r *Registry) SetStaff(name string, staffing model.Staffing) error {
	h, err := r.Hub(name)
	if err != nil {
		return err
	}
	if staffing.Doctors <= 0 || staffing.Nurses <= 0 || staffing.Other <= 0 {
		return fmt.Errorf("%w: staffing counts must be positive, got doctors=%d nurses=%d other=%d",
			model.ErrInvalidConfiguration, staffing.Doctors, staffing.Nurses, staffing.Other)
	}
	h.SetStaffing(staffing)
	return nil
}

// ResetAllocations clears every person's allocation state. Safe to call
// repeatedly.
func (r *Registry) ResetAllocations() {
	for _, p := range r.people {
		p.ClearAllocation()
	}
}
