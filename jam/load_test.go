package jam_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/jam"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{name: "ok with blank lines", input: "\n2 3 1\n\nX 0 0 0 1\n\n"},
		{name: "empty", input: "", wantErr: jam.ErrMalformedInput, wantLine: 0},
		{name: "short header", input: "2 3\nX 0 0 0 1\n", wantErr: jam.ErrMalformedInput, wantLine: 1},
		{name: "bad header number", input: "2 x 1\n", wantErr: jam.ErrMalformedInput, wantLine: 1},
		{name: "negative count", input: "2 3 -1\n", wantErr: jam.ErrMalformedInput, wantLine: 1},
		{name: "short car line", input: "2 3 1\nX 0 0 0\n", wantErr: jam.ErrMalformedInput, wantLine: 2},
		{name: "long id", input: "2 3 1\nXY 0 0 0 1\n", wantErr: jam.ErrMalformedInput, wantLine: 2},
		{name: "bad car number", input: "2 3 1\nX 0 a 0 1\n", wantErr: jam.ErrMalformedInput, wantLine: 2},
		{name: "missing cars", input: "2 3 2\nX 0 0 0 1\n", wantErr: jam.ErrMalformedInput, wantLine: 2},
		{name: "extra cars", input: "2 3 1\nX 0 0 0 1\nA 1 0 1 1\n", wantErr: jam.ErrMalformedInput, wantLine: 3},
		{name: "zero rows", input: "0 3 0\n", wantErr: jam.ErrInvariant},
		{name: "diagonal", input: "3 3 1\nX 0 0 1 1\n", wantErr: jam.ErrNotAligned},
		{name: "reversed", input: "3 3 1\nX 0 1 0 0\n", wantErr: jam.ErrInvariant},
		{name: "outside", input: "3 3 1\nX 0 1 0 3\n", wantErr: jam.ErrOutOfBounds},
		{name: "overlap", input: "3 3 2\nX 0 0 0 1\nA 0 1 1 1\n", wantErr: jam.ErrOverlap},
		{name: "duplicate", input: "3 3 2\nX 0 0 0 1\nX 1 0 1 1\n", wantErr: jam.ErrDuplicateCar},
		{name: "no target", input: "3 3 1\nA 0 0 0 1\n", wantErr: jam.ErrNoTarget},
		{name: "dot id", input: "3 3 2\nX 0 0 0 1\n. 1 0 1 1\n", wantErr: jam.ErrInvariant},
		{name: "overflowing header", input: "4000000000 4000000000 1\nX 0 0 0 1\n", wantErr: jam.ErrTooLarge, wantLine: 1},
		{name: "huge header", input: "\n100000 100000 1\nX 0 0 0 1\n", wantErr: jam.ErrTooLarge, wantLine: 2},
		{name: "huge car count", input: "2 3 4000000000\nX 0 0 0 1\n", wantErr: jam.ErrMalformedInput, wantLine: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := jam.Load(strings.NewReader(tt.input))
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 2, st.Rows())
				assert.Equal(t, 3, st.Cols())
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			var ie *jam.InputError
			if errors.Is(tt.wantErr, jam.ErrMalformedInput) || tt.wantLine > 0 {
				require.ErrorAs(t, err, &ie)
				assert.Equal(t, tt.wantLine, ie.Line)
			}
		})
	}
}

// TestStructuralErrorsWrapInvariant lets callers classify every board error at once.
func TestStructuralErrorsWrapInvariant(t *testing.T) {
	for _, err := range []error{jam.ErrNotAligned, jam.ErrOutOfBounds, jam.ErrOverlap, jam.ErrDuplicateCar, jam.ErrNoTarget, jam.ErrTooLarge} {
		assert.ErrorIs(t, err, jam.ErrInvariant)
		assert.NotErrorIs(t, err, jam.ErrMalformedInput)
	}
}

func TestLoadFile(t *testing.T) {
	st, err := jam.LoadFile("testdata/rush.txt")
	require.NoError(t, err)
	assert.Equal(t, 6, st.Rows())
	assert.Len(t, st.Cars(), 8)
	assert.Equal(t, jam.Car{ID: 'X', StartRow: 2, StartCol: 1, EndRow: 2, EndCol: 2}, st.Target())

	_, err = jam.LoadFile("testdata/does-not-exist.txt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, jam.ErrMalformedInput)
}

// TestNewRejectsOversizedGrid covers both the overflowing and the merely
// huge product of rows and cols.
func TestNewRejectsOversizedGrid(t *testing.T) {
	x := []jam.Car{{ID: jam.TargetID, StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1}}
	for _, dims := range [][2]int{{4000000000, 4000000000}, {100000, 100000}, {jam.MaxCells, 2}} {
		_, err := jam.New(dims[0], dims[1], x)
		assert.ErrorIs(t, err, jam.ErrTooLarge, "%dx%d", dims[0], dims[1])
	}
	_, err := jam.New(1, jam.MaxCells, x)
	assert.NoError(t, err)
}
