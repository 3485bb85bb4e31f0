package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoretti/vaxweek/pkg/core/ages"
	"github.com/lmoretti/vaxweek/pkg/core/model"
)

const testYear = 2026

func TestAddPerson_DuplicateSSN(t *testing.T) {
	reg := New(testYear)

	require.NoError(t, reg.AddPerson("Jane", "Doe", "JDOE80", 1980))
	assert.Equal(t, 1, reg.CountPeople())

	err := reg.AddPerson("John", "Doe", "JDOE80", 1981)
	assert.ErrorIs(t, err, model.ErrDuplicateKey)
	assert.Equal(t, 1, reg.CountPeople())
}

func TestAge_DerivedFromBirthYear(t *testing.T) {
	reg := New(testYear)
	require.NoError(t, reg.AddPerson("Jane", "Doe", "JDOE81", testYear-45))

	age, err := reg.Age("JDOE81")
	require.NoError(t, err)
	assert.Equal(t, 45, age)

	_, err = reg.Age("MISSING")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPeople_SortedBySSN(t *testing.T) {
	reg := New(testYear)
	require.NoError(t, reg.AddPerson("C", "C", "CCC", 1960))
	require.NoError(t, reg.AddPerson("A", "A", "AAA", 1970))
	require.NoError(t, reg.AddPerson("B", "B", "BBB", 1980))

	var ssns []string
	for _, p := range reg.People() {
		ssns = append(ssns, p.SSN)
	}
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, ssns)
}

func TestPeopleInInterval(t *testing.T) {
	reg := New(testYear)
	require.NoError(t, reg.AddPerson("Old", "Person", "OLD1", testYear-70))
	require.NoError(t, reg.AddPerson("Mid", "Person", "MID1", testYear-45))
	require.NoError(t, reg.AddPerson("Young", "Person", "YNG1", testYear-20))

	p, err := ages.NewPartition(40, 60)
	require.NoError(t, err)

	intervals := p.Intervals()
	assert.Equal(t, []string{"YNG1"}, reg.PeopleInInterval(intervals[0]))
	assert.Equal(t, []string{"MID1"}, reg.PeopleInInterval(intervals[1]))
	assert.Equal(t, []string{"OLD1"}, reg.PeopleInInterval(intervals[2]))
}

func TestDefineHub_Duplicate(t *testing.T) {
	reg := New(testYear)

	require.NoError(t, reg.DefineHub("Central"))
	err := reg.DefineHub("Central")
	assert.ErrorIs(t, err, model.ErrDuplicateKey)
}

func TestHubNames_Sorted(t *testing.T) {
	reg := New(testYear)
	require.NoError(t, reg.DefineHub("West"))
	require.NoError(t, reg.DefineHub("Central"))
	require.NoError(t, reg.DefineHub("East"))

	assert.Equal(t, []string{"Central", "East", "West"}, reg.HubNames())
}

func TestSetStaff(t *testing.T) {
	reg := New(testYear)
	require.NoError(t, reg.DefineHub("Central"))

	err := reg.SetStaff("Unknown", model.Staffing{Doctors: 1, Nurses: 1, Other: 1})
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = reg.SetStaff("Central", model.Staffing{Doctors: 0, Nurses: 3, Other: 1})
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)

	require.NoError(t, reg.SetStaff("Central", model.Staffing{Doctors: 2, Nurses: 3, Other: 1}))
	hub, err := reg.Hub("Central")
	require.NoError(t, err)
	assert.True(t, hub.Staffed())
}

func TestResetAllocations(t *testing.T) {
	reg := New(testYear)
	require.NoError(t, reg.AddPerson("Jane", "Doe", "JDOE80", 1980))

	p, err := reg.Person("JDOE80")
	require.NoError(t, err)
	p.Allocate(2, "Central")
	require.True(t, p.IsAllocated())

	reg.ResetAllocations()
	assert.False(t, p.IsAllocated())

	// Idempotent.
	reg.ResetAllocations()
	assert.False(t, p.IsAllocated())
}
