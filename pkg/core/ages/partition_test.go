package ages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoretti/vaxweek/pkg/core/model"
)

func TestNewPartition_Labels(t *testing.T) {
	p, err := NewPartition(40, 60)
	require.NoError(t, err)

	assert.Equal(t, []string{"[0,40)", "[40,60)", "[60,+)"}, p.Labels())
	assert.Equal(t, 3, p.Len())
}

func TestNewPartition_SingleBreakpoint(t *testing.T) {
	p, err := NewPartition(50)
	require.NoError(t, err)

	assert.Equal(t, []string{"[0,50)", "[50,+)"}, p.Labels())
}

func TestNewPartition_InvalidBreakpoints(t *testing.T) {
	tests := []struct {
		name        string
		breakpoints []int
	}{
		{"empty", []int{}},
		{"zero", []int{0, 40}},
		{"negative", []int{-10, 40}},
		{"not ascending", []int{40, 40}},
		{"descending", []int{60, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPartition(tt.breakpoints...)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
		})
	}
}

func TestPartition_CoversEveryAgeExactlyOnce(t *testing.T) {
	p, err := NewPartition(18, 40, 60, 80)
	require.NoError(t, err)

	for age := 0; age <= 120; age++ {
		matches := 0
		for _, iv := range p.Intervals() {
			if iv.Contains(age) {
				matches++
			}
		}
		assert.Equalf(t, 1, matches, "age %d should match exactly one interval", age)
	}
}

func TestPartition_IndexOf(t *testing.T) {
	p, err := NewPartition(40, 60)
	require.NoError(t, err)

	tests := []struct {
		age  int
		want int
	}{
		{0, 0},
		{39, 0},
		{40, 1},
		{59, 1},
		{60, 2},
		{117, 2},
	}

	for _, tt := range tests {
		idx, err := p.IndexOf(tt.age)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, idx, "age %d", tt.age)
	}

	_, err = p.IndexOf(-1)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestPartition_OldestFirst(t *testing.T) {
	p, err := NewPartition(40, 60)
	require.NoError(t, err)

	oldest := p.OldestFirst()
	require.Len(t, oldest, 3)
	assert.Equal(t, "[60,+)", oldest[0].Label())
	assert.Equal(t, "[40,60)", oldest[1].Label())
	assert.Equal(t, "[0,40)", oldest[2].Label())
}

func TestInterval_LabelMatchesContains(t *testing.T) {
	p, err := NewPartition(40, 60)
	require.NoError(t, err)

	// A person born CURRENT_YEAR-45 is 45 and falls in "[40,60)".
	idx, err := p.IndexOf(45)
	require.NoError(t, err)
	assert.Equal(t, "[40,60)", p.Intervals()[idx].Label())
}
