package model

// Assignment is an allocation of a person to a weekday slot at a hub.
// Day is a weekday index, 0 = Monday.
type Assignment struct {
	Day int
	Hub string
}

// Person represents a registered person awaiting vaccination.
// The allocation state is a tagged value: a nil assignment means
// unallocated, so a half-set (day without hub) state cannot exist.
type Person struct {
	SSN       string
	FirstName string
	LastName  string
	BirthYear int

	assignment *Assignment
}

// NewPerson creates an unallocated person.
func NewPerson(ssn, firstName, lastName string, birthYear int) *Person {
	return &Person{
		SSN:       ssn,
		FirstName: firstName,
		LastName:  lastName,
		BirthYear: birthYear,
	}
}

// AgeIn returns the person's age in the given year, computed on demand.
func (p *Person) AgeIn(currentYear int) int {
	return currentYear - p.BirthYear
}

// IsAllocated returns true if the person holds a (day, hub) slot.
func (p *Person) IsAllocated() bool {
	return p.assignment != nil
}

// Assignment returns the person's slot, if any.
func (p *Person) Assignment() (Assignment, bool) {
	if p.assignment == nil {
		return Assignment{}, false
	}
	return *p.assignment, true
}

// Allocate assigns the person to a (day, hub) slot.
func (p *Person) Allocate(day int, hub string) {
	p.assignment = &Assignment{Day: day, Hub: hub}
}

// ClearAllocation returns the person to the unallocated state.
func (p *Person) ClearAllocation() {
	p.assignment = nil
}

// Staffing holds the personnel counts of a hub. All counts must be
// greater than zero once set.
type Staffing struct {
	Doctors int
	Nurses  int
	Other   int
}

// Hub represents a vaccination hub. Staffing is optional until configured;
// hourly capacity is always derived from it, never stored.
type Hub struct {
	Name string

	staffing *Staffing
}

// NewHub creates a hub with no staffing configured.
func NewHub(name string) *Hub {
	return &Hub{Name: name}
}

// Staffed returns true once staffing has been configured.
func (h *Hub) Staffed() bool {
	return h.staffing != nil
}

// Staffing returns the hub's staffing counts, if configured.
func (h *Hub) Staffing() (Staffing, bool) {
	if h.staffing == nil {
		return Staffing{}, false
	}
	return *h.staffing, true
}

// SetStaffing configures the hub's personnel counts.
func (h *Hub) SetStaffing(s Staffing) {
	h.staffing = &s
}
