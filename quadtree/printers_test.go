package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridString(t *testing.T) {
	u := New()
	n := u.Empty(2)
	for _, c := range [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		var err error
		n, err = u.SetCell(n, c[0], c[1], true)
		require.NoError(t, err)
	}

	want := ".*..\n" +
		"..*.\n" +
		"***.\n" +
		"....\n"
	assert.Equal(t, want, GridString(n))
}
