package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	unitInterval = Interval{Lo: 0, Hi: 1}
	negInterval  = Interval{Lo: -1, Hi: 0}
	halfInterval = Interval{Lo: 0.5, Hi: 0.5}
)

func TestIntervalIsEmpty(t *testing.T) {
	require.False(t, unitInterval.IsEmpty())
	require.False(t, halfInterval.IsEmpty())
	require.True(t, EmptyInterval().IsEmpty())
}

func TestIntervalLength(t *testing.T) {
	tests := []struct {
		interval Interval
		want     float64
	}{
		{unitInterval, 1},
		{negInterval, 1},
		{halfInterval, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.interval.Length())
	}
}

func TestIntervalContains(t *testing.T) {
	require.True(t, unitInterval.Contains(0))
	require.True(t, unitInterval.Contains(1))
	require.True(t, unitInterval.Contains(0.5))
	require.False(t, unitInterval.Contains(1.1))
}

func TestIntervalUnion(t *testing.T) {
	require.Equal(t, Interval{Lo: -1, Hi: 1}, unitInterval.Union(negInterval))
	require.Equal(t, unitInterval, unitInterval.Union(EmptyInterval()))
	require.Equal(t, unitInterval, EmptyInterval().Union(unitInterval))
}

func TestIntervalIntersects(t *testing.T) {
	require.True(t, unitInterval.Intersects(halfInterval))
	require.True(t, unitInterval.Intersects(negInterval)) // share 0
	require.False(t, unitInterval.Intersects(Interval{Lo: 2, Hi: 3}))
	require.False(t, unitInterval.Intersects(EmptyInterval()))
}
