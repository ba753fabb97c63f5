package svgpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcwise/pathbool/geom"
)

func TestPathFromPathDataSquare(t *testing.T) {
	path, err := PathFromPathData("M0,0 L10,0 L10,10 L0,10 Z")
	require.NoError(t, err)
	require.Len(t, path, 4)
	require.Equal(t, geom.Vector{X: 0, Y: 0}, path[0].P0)
	require.Equal(t, geom.Vector{X: 0, Y: 0}, path[3].P1)
}

func TestPathFromPathDataImplicitLineAfterMove(t *testing.T) {
	// A moveto followed by extra coordinate pairs is an implicit lineto.
	path, err := PathFromPathData("M0,0 10,0 10,10")
	require.NoError(t, err)
	require.Len(t, path, 2)
	require.Equal(t, geom.KindLine, path[0].Kind)
	require.Equal(t, geom.KindLine, path[1].Kind)
}

func TestPathFromPathDataImplicitCommandRepeat(t *testing.T) {
	path, err := PathFromPathData("M0,0 L10,0 20,0 30,0")
	require.NoError(t, err)
	require.Len(t, path, 3)
	require.Equal(t, geom.Vector{X: 30, Y: 0}, path[2].P1)
}

func TestPathFromPathDataNoSeparatorBeforeNegative(t *testing.T) {
	path, err := PathFromPathData("M0,0L5-5")
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, geom.Vector{X: 5, Y: -5}, path[0].P1)
}

func TestPathFromPathDataArcFlags(t *testing.T) {
	// Comma-separated arc parameters: rx,ry,phi then the two 0/1 flags
	// then the endpoint (the no-separator flag case is the next test).
	path, err := PathFromPathData("M0,0A5,5,0,1,1,10,0")
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, geom.KindArc, path[0].Kind)
	require.True(t, path[0].LargeArc)
	require.True(t, path[0].Sweep)
	require.Equal(t, 5.0, path[0].RX)
}

func TestPathFromPathDataArcFlagsNoCommas(t *testing.T) {
	path, err := PathFromPathData("M0 0A5 5 0 11 10 0")
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.True(t, path[0].LargeArc)
	require.True(t, path[0].Sweep)
}

func TestPathFromPathDataLowercaseRelative(t *testing.T) {
	path, err := PathFromPathData("m10,10 l5,0 l0,5 z")
	require.NoError(t, err)
	require.Len(t, path, 3)
	require.Equal(t, geom.Vector{X: 15, Y: 10}, path[0].P1)
	require.Equal(t, geom.Vector{X: 15, Y: 15}, path[1].P1)
	require.Equal(t, geom.Vector{X: 10, Y: 10}, path[2].P1)
}

func TestPathFromPathDataRejectsMalformed(t *testing.T) {
	_, err := PathFromPathData("L10,10")
	require.Error(t, err)

	_, err = PathFromPathData("M0,0 X10,10")
	require.Error(t, err)
}

func TestPathToPathDataRoundTrip(t *testing.T) {
	original, err := PathFromPathData("M0,0 L10,0 L10,10 L0,10 Z")
	require.NoError(t, err)

	d := PathToPathData(original, 1e-9)
	reparsed, err := PathFromPathData(d)
	require.NoError(t, err)
	require.Equal(t, original, reparsed)
}
