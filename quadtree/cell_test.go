package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCellRoundTrip(t *testing.T) {
	u := New()
	n := u.Empty(4)

	coords := [][2]int64{{0, 0}, {15, 15}, {7, 8}, {8, 7}, {3, 12}}
	for _, c := range coords {
		var err error
		n, err = u.SetCell(n, c[0], c[1], true)
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(len(coords)), n.Population())
	for _, c := range coords {
		assert.True(t, n.Cell(c[0], c[1]), "cell (%d,%d)", c[0], c[1])
	}
	assert.False(t, n.Cell(1, 1))
	assert.False(t, n.Cell(15, 0))
}

func TestSetCellLeavesOthersAlone(t *testing.T) {
	u := New()
	n := u.Empty(3)
	n, err := u.SetCell(n, 2, 5, true)
	require.NoError(t, err)

	m, err := u.SetCell(n, 6, 1, true)
	require.NoError(t, err)

	for y := int64(0); y < 8; y++ {
		for x := int64(0); x < 8; x++ {
			if x == 6 && y == 1 {
				continue
			}
			assert.Equal(t, n.Cell(x, y), m.Cell(x, y), "cell (%d,%d)", x, y)
		}
	}
	// The untouched quadrants are shared, not copied.
	assert.Same(t, n.SW(), m.SW())
}

func TestSetCellIdempotent(t *testing.T) {
	u := New()
	n := u.Empty(3)
	n, err := u.SetCell(n, 4, 4, true)
	require.NoError(t, err)

	same, err := u.SetCell(n, 4, 4, true)
	require.NoError(t, err)
	assert.Same(t, n, same)

	same, err = u.SetCell(n, 0, 7, false)
	require.NoError(t, err)
	assert.Same(t, n, same)
}

func TestSetCellLastWriteWins(t *testing.T) {
	u := New()
	n := u.Empty(3)

	a, err := u.SetCell(n, 3, 3, true)
	require.NoError(t, err)
	ab, err := u.SetCell(a, 3, 3, false)
	require.NoError(t, err)
	b, err := u.SetCell(n, 3, 3, false)
	require.NoError(t, err)

	assert.Same(t, b, ab)
	assert.Same(t, n, ab) // clearing a dead cell round-trips to the original
}

func TestSetCellOutOfBounds(t *testing.T) {
	u := New()
	n := u.Empty(3)

	type args struct{ x, y int64 }
	tests := []struct {
		name string
		args args
	}{
		{"x negative", args{-1, 0}},
		{"y negative", args{0, -1}},
		{"x at width", args{8, 0}},
		{"y beyond width", args{0, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.SetCell(n, tt.args.x, tt.args.y, true)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestCellOutOfRangeReadsDead(t *testing.T) {
	u := New()
	n, err := u.SetCell(u.Empty(2), 0, 0, true)
	require.NoError(t, err)

	assert.False(t, n.Cell(-1, 0))
	assert.False(t, n.Cell(0, -1))
	assert.False(t, n.Cell(4, 0))
	assert.False(t, n.Cell(0, 4))
	assert.True(t, n.Cell(0, 0))
}
