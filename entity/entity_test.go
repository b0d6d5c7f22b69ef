package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfBoundsIsInclusive(t *testing.T) {
	g := Grid{Width: 10, Height: 5}

	cases := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, false},
		{Position{9, 4}, false},
		{Position{10, 5}, false}, // one past the visible area is still in bounds
		{Position{11, 0}, true},
		{Position{0, 6}, true},
		{Position{-1, 0}, true},
		{Position{0, -1}, true},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, g.OutOfBounds(c.pos), "position %v", c.pos)
	}
}

func TestFromTerminalCaps(t *testing.T) {
	assert.Equal(t, Grid{Width: 150, Height: 50}, FromTerminal(200, 60, 150, 50))
	assert.Equal(t, Grid{Width: 80, Height: 24}, FromTerminal(80, 24, 150, 50))
	assert.Equal(t, Position{X: 40, Y: 12}, Grid{Width: 80, Height: 24}.Center())
}

func TestStep(t *testing.T) {
	p := Position{X: 5, Y: 5}
	assert.Equal(t, Position{5, 4}, p.Step(Up))
	assert.Equal(t, Position{5, 6}, p.Step(Down))
	assert.Equal(t, Position{4, 5}, p.Step(Left))
	assert.Equal(t, Position{6, 5}, p.Step(Right))
}

func TestKillOnce(t *testing.T) {
	e := New(1, Alien, Position{})
	require.True(t, e.Alive())
	assert.True(t, e.Kill())
	assert.False(t, e.Alive())
	assert.False(t, e.Kill(), "second kill must report no transition")
}

func TestWarpgateCharge(t *testing.T) {
	g := New(1, Warpgate, Position{})

	for i := 0; i <= ChargeThreshold; i++ {
		require.False(t, g.Ready(), "ready too early at charge %d", g.Charge())
		g.Recharge()
		assert.Equal(t, i+1, g.Charge())
	}
	assert.True(t, g.Ready())

	g.Recharge()
	assert.Equal(t, ChargeThreshold+1, g.Charge(), "charge stops once ready")
}

func TestRechargeIgnoresOtherKinds(t *testing.T) {
	a := New(1, Alien, Position{})
	a.Recharge()
	assert.Zero(t, a.Charge())
	assert.False(t, a.Ready())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("boulder")
	assert.Error(t, err)
}

func TestHeading(t *testing.T) {
	d := New(1, Dozer, Position{})
	_, ok := d.Heading()
	assert.False(t, ok)

	d.Face(Left)
	h, ok := d.Heading()
	assert.True(t, ok)
	assert.Equal(t, Left, h)
}

func TestNewPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { New(1, Kind(42), Position{}) })
}
