package hashlife

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/lifegrid/go-hashlife/quadtree"
)

func TestAdvanceRejectsBadArguments(t *testing.T) {
	u := quadtree.New()
	e := New(u)

	_, err := e.Advance(u.Empty(1), 0)
	assert.ErrorIs(t, err, ErrLevelTooLow)

	// At level 4 the macro-step is 4 generations.
	_, err = e.Advance(u.Empty(4), 5)
	assert.ErrorIs(t, err, ErrTooManySteps)
	_, err = e.Advance(u.Empty(4), 4)
	assert.NilError(t, err)
}

func TestAdvanceZeroIsTheUntouchedCenter(t *testing.T) {
	u := quadtree.New()
	e := New(u)

	n := buildNode(t, u, 4, cellSet{{7, 7}: {}, {8, 8}: {}, {3, 12}: {}})
	r, err := e.Advance(n, 0)
	assert.NilError(t, err)

	assert.Equal(t, n.Level()-1, r.Level())
	same := u.CenteredSubnode(n.NW(), n.NE(), n.SW(), n.SE())
	assert.Assert(t, r == same, "steps=0 must return the centered subnode")
	for y := int64(0); y < 8; y++ {
		for x := int64(0); x < 8; x++ {
			assert.Equal(t, n.Cell(x+4, y+4), r.Cell(x, y))
		}
	}
}

func TestAdvanceFullMacroStepIsStep(t *testing.T) {
	u := quadtree.New()
	e := New(u)

	n := buildNode(t, u, 4, cellSet{{8, 7}: {}, {8, 8}: {}, {8, 9}: {}})
	viaStep, err := e.Step(n)
	assert.NilError(t, err)
	viaAdvance, err := e.Advance(n, MacroSteps(n.Level()))
	assert.NilError(t, err)
	assert.Assert(t, viaStep == viaAdvance)
}

func TestAdvanceSingleGeneration(t *testing.T) {
	u := quadtree.New()
	e := New(u)

	// Horizontal blinker phase: one generation flips it vertical.
	n := buildNode(t, u, 4, cellSet{{7, 8}: {}, {8, 8}: {}, {9, 8}: {}})
	r, err := e.Advance(n, 1)
	assert.NilError(t, err)

	assert.Equal(t, uint64(3), r.Population())
	for _, c := range [][2]int64{{4, 3}, {4, 4}, {4, 5}} {
		assert.Assert(t, r.Cell(c[0], c[1]), "cell (%d,%d)", c[0], c[1])
	}
}

// TestAdvanceMidRange exercises the two-phase split for a step count
// strictly between the half and full macro-step.
func TestAdvanceMidRange(t *testing.T) {
	u := quadtree.New()
	e := New(u)

	cells := cellSet{{7, 7}: {}, {8, 7}: {}, {6, 8}: {}, {7, 8}: {}, {7, 9}: {}}
	n := buildNode(t, u, 4, cells) // macro-step 4, half 2

	r, err := e.Advance(n, 3)
	assert.NilError(t, err)

	want := evolveRefN(cells, 3)
	for y := int64(0); y < 8; y++ {
		for x := int64(0); x < 8; x++ {
			_, alive := want[[2]int64{x + 4, y + 4}]
			assert.Equal(t, alive, r.Cell(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestGliderDrift: four generations translate a glider one cell
// diagonally.
func TestGliderDrift(t *testing.T) {
	u := quadtree.New()
	e := New(u)

	glider := [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	cells := make(cellSet)
	for _, c := range glider {
		cells[[2]int64{c[0] + 20, c[1] + 20}] = struct{}{}
	}
	n := buildNode(t, u, 6, cells)

	r, err := e.Advance(n, 4)
	assert.NilError(t, err)
	assert.Equal(t, uint8(5), r.Level())
	assert.Equal(t, uint64(5), r.Population())

	// Result coordinates are input coordinates less 16; the glider has
	// moved from (20,20) to (21,21).
	for _, c := range glider {
		assert.Assert(t, r.Cell(c[0]+20+1-16, c[1]+20+1-16),
			"glider cell offset (%d,%d)", c[0], c[1])
	}

	// And the drift agrees with the reference evolver.
	want := evolveRefN(cells, 4)
	for c := range want {
		assert.Assert(t, r.Cell(c[0]-16, c[1]-16), "reference cell (%d,%d)", c[0], c[1])
	}
}

func TestAdvanceMatchesIteratedSingleSteps(t *testing.T) {
	u := quadtree.New()
	e := New(u)

	cells := cellSet{{31, 31}: {}, {32, 31}: {}, {30, 32}: {}, {31, 32}: {}, {31, 33}: {}}
	n := buildNode(t, u, 6, cells)

	for steps := uint64(0); steps <= 8; steps++ {
		r, err := e.Advance(n, steps)
		assert.NilError(t, err)

		want := evolveRefN(cells, int(steps))
		got := uint64(0)
		for y := int64(0); y < 32; y++ {
			for x := int64(0); x < 32; x++ {
				_, alive := want[[2]int64{x + 16, y + 16}]
				assert.Equal(t, alive, r.Cell(x, y), "steps %d cell (%d,%d)", steps, x, y)
				if alive {
					got++
				}
			}
		}
		assert.Equal(t, got, r.Population(), "steps %d", steps)
	}
}
