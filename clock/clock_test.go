package clock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/clock"
	"github.com/katalvlaran/statespace/search"
)

func positions(path []clock.State) []int {
	out := make([]int, len(path))
	for i, s := range path {
		out[i] = s.Position()
	}
	return out
}

// TestSuccessorsWrap checks the wraparound at both ends of the face.
func TestSuccessorsWrap(t *testing.T) {
	tests := []struct {
		hours, start int
		want         []int
	}{
		{12, 6, []int{5, 7}},
		{12, 1, []int{12, 2}},
		{12, 12, []int{11, 1}},
		{1, 1, []int{1, 1}},
		{2, 2, []int{1, 1}},
	}
	for _, tt := range tests {
		s, err := clock.New(tt.hours, tt.start, 0)
		require.NoError(t, err)
		succ := s.Successors()
		assert.Equal(t, tt.want, positions(succ), "hours=%d start=%d", tt.hours, tt.start)
		assert.Equal(t, tt.start, s.Position(), "receiver must not move")
	}
}

// TestSolve_ShortestDirection picks the shorter way around the face.
func TestSolve_ShortestDirection(t *testing.T) {
	tests := []struct {
		hours, start, end int
		steps             int
		path              []int
	}{
		{12, 6, 12, 6, []int{6, 5, 4, 3, 2, 1, 12}},
		{12, 11, 2, 3, []int{11, 12, 1, 2}},
		{12, 2, 11, 3, []int{2, 1, 12, 11}},
		{5, 3, 3, 0, []int{3}},
	}
	for _, tt := range tests {
		s, err := clock.New(tt.hours, tt.start, tt.end)
		require.NoError(t, err)
		res, err := search.Solve(s)
		require.NoError(t, err)
		require.True(t, res.Found())
		assert.Equal(t, tt.steps, res.Steps())
		assert.Equal(t, tt.path, positions(res.Path))
	}
}

// TestSolve_EndOffFace explores the whole face and reports NotFound.
func TestSolve_EndOffFace(t *testing.T) {
	s, err := clock.New(12, 3, 13)
	require.NoError(t, err)
	res, err := search.Solve(s)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, res.Outcome)
	assert.Equal(t, 11, res.UniqueStates)
	assert.Equal(t, 24, res.TotalEdges)
}

// TestNew covers construction-time validation.
func TestNew(t *testing.T) {
	for _, v := range [][3]int{{-1, 1, 1}, {12, -1, 1}, {12, 1, -1}, {0, 0, 0}, {12, 0, 3}, {12, 13, 3}} {
		if _, err := clock.New(v[0], v[1], v[2]); !errors.Is(err, clock.ErrInvariant) {
			t.Errorf("New%v: want ErrInvariant, got %v", v, err)
		}
	}
	s, err := clock.New(12, 6, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Hours())
	assert.Equal(t, 6, s.Start())
	assert.Equal(t, 12, s.End())
}

// TestParse covers arity and number parsing.
func TestParse(t *testing.T) {
	_, err := clock.Parse([]string{"12", "6"})
	assert.ErrorIs(t, err, clock.ErrUsage)
	_, err = clock.Parse([]string{"12", "six", "1"})
	assert.ErrorIs(t, err, clock.ErrMalformedInput)
	_, err = clock.Parse([]string{"12", "-6", "1"})
	assert.ErrorIs(t, err, clock.ErrInvariant)

	s, err := clock.Parse([]string{"12", "6", "12"})
	require.NoError(t, err)
	assert.Equal(t, "6", s.String())
}
