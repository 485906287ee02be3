package trajdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrajectoryNormalizes(t *testing.T) {
	tr := BuildTrajectory([]RawSample{{X: 50, Y: 20, Frame: 7}, {X: 10, Y: 30, Frame: 3}}, 10)

	p, ok := tr.At(7)
	require.True(t, ok)
	assert.Equal(t, Point{X: 5, Y: 2}, p)

	assert.Equal(t, 3, tr.First())
	assert.Equal(t, 7, tr.Last())
	assert.Equal(t, 2, tr.Len())

	start, ok := tr.Start()
	require.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 3}, start)
}

func TestBuildTrajectoryDuplicateFrameLastWins(t *testing.T) {
	tr := BuildTrajectory([]RawSample{{X: 1, Y: 1, Frame: 4}, {X: 9, Y: 8, Frame: 4}}, 1)

	p, ok := tr.At(4)
	require.True(t, ok)
	assert.Equal(t, Point{X: 9, Y: 8}, p)
	assert.Equal(t, 1, tr.Len())
}

func TestTrajectoryGapsAreAbsent(t *testing.T) {
	tr := BuildTrajectory([]RawSample{{Frame: 0}, {Frame: 5}}, 1)
	for _, f := range []int{-1, 1, 2, 3, 4, 6} {
		_, ok := tr.At(f)
		assert.False(t, ok, "frame %d", f)
	}
}

func TestEmptyTrajectory(t *testing.T) {
	tr := BuildTrajectory(nil, 1)
	assert.Equal(t, 0, tr.Len())
	_, ok := tr.Start()
	assert.False(t, ok)
}

func TestBuildTrajectories(t *testing.T) {
	trs := BuildTrajectories([][]RawSample{{{X: 2, Y: 2, Frame: 1}}, {}}, 2)
	require.Len(t, trs, 2)
	p, _ := trs[0].At(1)
	assert.Equal(t, Point{X: 1, Y: 1}, p)
	assert.Equal(t, 0, trs[1].Len())
}
