package vial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, permissive bool, contents ...Color) *Vial {
	t.Helper()
	v, err := New(permissive, contents...)
	require.NoError(t, err)
	return v
}

func requireInvariants(t *testing.T, v *Vial) {
	t.Helper()
	require.NoError(t, v.Valid())
	require.Equal(t, Capacity, v.EmptySlotCount()+v.Len())
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents []Color
		want     string
		wantErr  error
	}{
		{name: "Empty", want: "____"},
		{name: "Partial", contents: []Color{'A', 'B'}, want: "AB__"},
		{name: "Full", contents: []Color{'A', 'A', 'A', 'A'}, want: "AAAA"},
		{name: "Overfill", contents: []Color{'A', 'A', 'A', 'A', 'A'}, wantErr: ErrOverfill},
		{name: "Placeholder", contents: []Color{'A', EmptySymbol}, wantErr: ErrInvalidColor},
		{name: "Space", contents: []Color{' '}, wantErr: ErrInvalidColor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(false, tc.contents...)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.String())
			requireInvariants(t, v)
		})
	}
}

func TestPourOutIsLastInFirstOut(t *testing.T) {
	t.Parallel()

	v := mustNew(t, false, 'A', 'B')

	c, ok := v.PourOut()
	require.True(t, ok)
	assert.Equal(t, Color('B'), c)
	assert.Equal(t, "A___", v.String())
	requireInvariants(t, v)

	c, ok = v.PourOut()
	require.True(t, ok)
	assert.Equal(t, Color('A'), c)
	assert.Equal(t, "____", v.String())
	requireInvariants(t, v)

	_, ok = v.PourOut()
	assert.False(t, ok)
	assert.Equal(t, "____", v.String())
}

func TestPourOutFullVial(t *testing.T) {
	t.Parallel()

	v := mustNew(t, false, 'A', 'B', 'C', 'D')
	c, ok := v.PourOut()
	require.True(t, ok)
	assert.Equal(t, Color('D'), c)
	assert.Equal(t, "ABC_", v.String())
}

func TestPourIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		permissive bool
		contents   []Color
		unit       Color
		wantOK     bool
		want       string
	}{
		{name: "EmptyAcceptsAnything", contents: nil, unit: 'A', wantOK: true, want: "A___"},
		{name: "MatchingColor", contents: []Color{'A'}, unit: 'A', wantOK: true, want: "AA__"},
		{name: "MismatchRejected", contents: []Color{'A'}, unit: 'B', wantOK: false, want: "A___"},
		{name: "MismatchPermissive", permissive: true, contents: []Color{'A'}, unit: 'B', wantOK: true, want: "AB__"},
		{name: "MatchesTopNotBottom", contents: []Color{'A', 'B'}, unit: 'A', wantOK: false, want: "AB__"},
		{name: "FullRejected", contents: []Color{'A', 'A', 'A', 'A'}, unit: 'A', wantOK: false, want: "AAAA"},
		{name: "FullRejectedPermissive", permissive: true, contents: []Color{'A', 'B', 'C', 'D'}, unit: 'E', wantOK: false, want: "ABCD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := mustNew(t, tc.permissive, tc.contents...)
			assert.Equal(t, tc.wantOK, v.PourIn(tc.unit))
			assert.Equal(t, tc.want, v.String())
			requireInvariants(t, v)
		})
	}
}

func TestPourInThenPourOutRestoresContents(t *testing.T) {
	t.Parallel()

	for _, contents := range [][]Color{nil, {'A'}, {'A', 'B'}, {'C', 'C', 'A'}} {
		v := mustNew(t, true, contents...)
		before := v.String()

		require.True(t, v.PourIn('Z'))
		c, ok := v.PourOut()
		require.True(t, ok)
		assert.Equal(t, Color('Z'), c)
		assert.Equal(t, before, v.String())
	}
}

func TestPourable(t *testing.T) {
	t.Parallel()

	v := mustNew(t, false, 'A', 'B')
	assert.True(t, v.Pourable('B', 2))
	assert.False(t, v.Pourable('A', 2))

	v.SetPermissive(true)
	assert.True(t, v.Permissive())
	assert.True(t, v.Pourable('A', 2))

	assert.True(t, NewEmpty(false).Pourable('Q', 0))
}

func TestOccupancy(t *testing.T) {
	t.Parallel()

	empty := NewEmpty(false)
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.HasSpace())
	assert.Equal(t, Capacity, empty.EmptySlotCount())
	_, ok := empty.Top()
	assert.False(t, ok)

	full := NewFull('R', false)
	assert.False(t, full.IsEmpty())
	assert.False(t, full.HasSpace())
	assert.Equal(t, 0, full.EmptySlotCount())
	assert.Equal(t, []Color{'R', 'R', 'R', 'R'}, full.Contents())

	partial := mustNew(t, false, 'G', 'B', 'B')
	assert.Equal(t, 1, partial.EmptySlotCount())
	assert.Equal(t, 3, partial.Len())
	top, ok := partial.Top()
	require.True(t, ok)
	assert.Equal(t, Color('B'), top)
	assert.True(t, partial.Slot(3).IsEmpty())
	assert.True(t, partial.Slot(-1).IsEmpty())
	c, ok := partial.Slot(0).Color()
	require.True(t, ok)
	assert.Equal(t, Color('G'), c)
}

func TestClone(t *testing.T) {
	t.Parallel()

	v := mustNew(t, true, 'A')
	clone := v.Clone()
	require.True(t, clone.PourIn('B'))
	assert.Equal(t, "A___", v.String())
	assert.Equal(t, "AB__", clone.String())
	assert.True(t, clone.Permissive())
}

func TestValidDetectsGap(t *testing.T) {
	t.Parallel()

	v := &Vial{}
	v.slots[1] = Filled('A')
	assert.True(t, errors.Is(v.Valid(), ErrGap))
}
