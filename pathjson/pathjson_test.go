package pathjson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcwise/pathbool/geom"
)

func TestMarshalUnmarshalRoundTripAllKinds(t *testing.T) {
	path := geom.Path{
		geom.Line(geom.Vector{X: 0, Y: 0}, geom.Vector{X: 10, Y: 0}),
		geom.Quadratic(geom.Vector{X: 10, Y: 0}, geom.Vector{X: 15, Y: 5}, geom.Vector{X: 10, Y: 10}),
		geom.Cubic(geom.Vector{X: 10, Y: 10}, geom.Vector{X: 5, Y: 15}, geom.Vector{X: 5, Y: 5}, geom.Vector{X: 0, Y: 10}),
		geom.Arc(geom.Vector{X: 0, Y: 10}, 5, 3, 30, true, false, geom.Vector{X: 0, Y: 0}),
	}

	data, err := MarshalPath(path)
	require.NoError(t, err)

	decoded, err := UnmarshalPath(data)
	require.NoError(t, err)
	require.Equal(t, path, decoded)
}

func TestMarshalPathEncodesTypeTags(t *testing.T) {
	path := geom.Path{geom.Line(geom.Vector{X: 0, Y: 0}, geom.Vector{X: 1, Y: 1})}
	data, err := MarshalPath(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"type":"L"`)
}

func TestMarshalPathOmitsUnusedFieldsForLine(t *testing.T) {
	path := geom.Path{geom.Line(geom.Vector{X: 0, Y: 0}, geom.Vector{X: 1, Y: 1})}
	data, err := MarshalPath(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), `"c1"`)
	require.NotContains(t, string(data), `"rx"`)
}

func TestUnmarshalPathRejectsUnknownType(t *testing.T) {
	_, err := UnmarshalPath([]byte(`[{"type":"Z","p0":[0,0],"p1":[1,1]}]`))
	require.Error(t, err)
}

func TestUnmarshalPathRejectsMissingControlPoint(t *testing.T) {
	_, err := UnmarshalPath([]byte(`[{"type":"Q","p0":[0,0],"p1":[1,1]}]`))
	require.Error(t, err)

	_, err = UnmarshalPath([]byte(`[{"type":"C","p0":[0,0],"p1":[1,1],"c1":[0.5,0.5]}]`))
	require.Error(t, err)
}

func TestUnmarshalPathRejectsMalformedJSON(t *testing.T) {
	_, err := UnmarshalPath([]byte(`not json`))
	require.Error(t, err)
}

func TestUnmarshalPathEmptyArray(t *testing.T) {
	path, err := UnmarshalPath([]byte(`[]`))
	require.NoError(t, err)
	require.Len(t, path, 0)
}

func TestMarshalArcPreservesFlags(t *testing.T) {
	path := geom.Path{geom.Arc(geom.Vector{X: 0, Y: 0}, 5, 5, 0, true, true, geom.Vector{X: 10, Y: 0})}
	data, err := MarshalPath(path)
	require.NoError(t, err)

	decoded, err := UnmarshalPath(data)
	require.NoError(t, err)
	require.True(t, decoded[0].LargeArc)
	require.True(t, decoded[0].Sweep)
}
