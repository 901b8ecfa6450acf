package invaders

// Side identifies who fired a bullet.
type Side int

const (
	SidePlayer Side = iota
	SideAlien
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAlien:
		return "Alien"
	default:
		return "Unknown"
	}
}

// Bullet is a projectile in flight.
type Bullet struct {
	X, Y     int
	Damage   int
	Side     Side
	Movement Movement
}

// NewBullet creates a bullet at (x, y). Placing it in the right collection is
// the caller's job.
func NewBullet(side Side, x, y, damage int, m Movement) Bullet {
	return Bullet{X: x, Y: y, Damage: damage, Side: side, Movement: m}
}

// Advance moves the bullet one tick along its movement.
func (b *Bullet) Advance() {
	b.X, b.Y = b.Movement.NextPosition(b.X, b.Y)
}

// Peek returns where the bullet will be after its next Advance without moving it.
func (b Bullet) Peek() (int, int) {
	return b.Movement.NextPosition(b.X, b.Y)
}
