package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovementNextPosition(t *testing.T) {
	tests := []struct {
		name  string
		m     Movement
		wantX int
		wantY int
	}{
		{"up", Up(10), 50, 90},
		{"down", Down(4), 50, 104},
		{"stationary", Up(0), 50, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := tc.m.NextPosition(50, 100)
			assert.Equal(t, tc.wantX, x)
			assert.Equal(t, tc.wantY, y)
		})
	}
}

func TestMovementUnknownKindPanics(t *testing.T) {
	m := Movement{Kind: MovementKind(99), Speed: 1}
	assert.PanicsWithValue(t, "invaders: unknown movement kind 99", func() {
		m.NextPosition(0, 0)
	})
}

func TestBulletAdvanceIsDeterministic(t *testing.T) {
	a := NewBullet(SideAlien, 12, 30, 1, Down(7))
	b := NewBullet(SideAlien, 12, 30, 1, Down(7))

	for i := 0; i < 50; i++ {
		a.Advance()
		b.Advance()
		assert.Equal(t, a, b)
	}
}

func TestBulletAdvanceComposes(t *testing.T) {
	for _, m := range []Movement{Up(3), Down(11)} {
		for k := 0; k <= 12; k++ {
			stepped := NewBullet(SidePlayer, 100, 200, 1, m)
			for i := 0; i < k; i++ {
				stepped.Advance()
			}

			jumped := NewBullet(SidePlayer, 100, 200, 1, m.Repeat(k))
			jumped.Advance()

			assert.Equal(t, jumped.X, stepped.X, "%s x%d", m.Kind, k)
			assert.Equal(t, jumped.Y, stepped.Y, "%s x%d", m.Kind, k)
		}
	}
}

func TestBulletPeekDoesNotMove(t *testing.T) {
	b := NewBullet(SidePlayer, 5, 5, 1, Up(2))
	x, y := b.Peek()
	assert.Equal(t, 5, x)
	assert.Equal(t, 3, y)
	assert.Equal(t, 5, b.Y)
}
