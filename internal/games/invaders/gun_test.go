package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGunFireWhenReady(t *testing.T) {
	g := NewGun(SidePlayer, 20, 3, Up(10))
	require.True(t, g.Ready())

	b, ok := g.Fire(40, 100)
	require.True(t, ok)
	assert.Equal(t, Bullet{X: 40, Y: 100, Damage: 3, Side: SidePlayer, Movement: Up(10)}, b)
	assert.Equal(t, 1, g.Charge())
	assert.False(t, g.Ready())

	_, ok = g.Fire(40, 100)
	assert.False(t, ok, "a charging gun drops fire requests")
}

func TestGunRechargeWindow(t *testing.T) {
	for _, rate := range []int{1, 2, 5, 20, 120} {
		g := NewGun(SideAlien, rate, 1, Down(4))
		_, ok := g.Fire(0, 0)
		require.True(t, ok)

		for i := 1; i < rate; i++ {
			g.Recharge()
			_, ok := g.Fire(0, 0)
			assert.False(t, ok, "rate %d: fire after %d recharges should be refused", rate, i)
		}
		g.Recharge()
		assert.True(t, g.Ready(), "rate %d: gun should be ready after %d recharges", rate, rate)
	}
}

func TestGunRechargeWhenReadyIsNoop(t *testing.T) {
	g := NewGun(SidePlayer, 3, 1, Up(1))
	for i := 0; i < 10; i++ {
		g.Recharge()
	}
	assert.True(t, g.Ready())
	assert.Zero(t, g.Charge())
}

func TestGunSameTickRechargeKeepsCharge(t *testing.T) {
	g := NewGun(SidePlayer, 20, 1, Up(1))

	_, ok := g.Fire(0, 0)
	require.True(t, ok)
	g.Recharge()
	assert.Equal(t, 1, g.Charge())

	g.Recharge()
	assert.Equal(t, 2, g.Charge())
}

func TestGunHeldFire(t *testing.T) {
	g := NewGun(SidePlayer, 20, 1, Up(1))

	var fired []int
	for tick := 1; tick <= 45; tick++ {
		if _, ok := g.Fire(0, 0); ok {
			fired = append(fired, tick)
		}
		g.Recharge()
	}
	assert.Equal(t, []int{1, 21, 41}, fired)
}

func TestNewGunClampsRate(t *testing.T) {
	g := NewGun(SidePlayer, 0, 1, Up(1))
	assert.Equal(t, 1, g.RechargeRate)
}
