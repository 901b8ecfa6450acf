package invaders

// Gun limits how often its owner can fire.
//
// A gun is Ready at charge 0. Firing sets the charge to 1 and each tick's
// Recharge moves it on until it wraps back to 0 at RechargeRate. The Recharge
// that closes the firing tick leaves the charge at 1, so a gun fired every
// tick it is Ready shoots once per RechargeRate ticks.
type Gun struct {
	RechargeRate int
	Damage       int
	Side         Side
	Movement     Movement

	charge    int
	justFired bool
}

// NewGun creates a Ready gun.
func NewGun(side Side, rechargeRate, damage int, m Movement) *Gun {
	if rechargeRate < 1 {
		rechargeRate = 1
	}
	return &Gun{
		RechargeRate: rechargeRate,
		Damage:       damage,
		Side:         side,
		Movement:     m,
	}
}

// Ready reports whether the next Fire produces a bullet.
func (g *Gun) Ready() bool { return g.charge == 0 }

// Charge returns the current charge level.
func (g *Gun) Charge() int { return g.charge }

// Fire returns a bullet at (x, y) if the gun is Ready.
// A gun that is still charging returns false and the request is dropped.
func (g *Gun) Fire(x, y int) (Bullet, bool) {
	if g.charge != 0 {
		return Bullet{}, false
	}
	g.charge = 1
	g.justFired = true
	return NewBullet(g.Side, x, y, g.Damage, g.Movement), true
}

// Recharge runs once per tick whether or not the gun fired.
func (g *Gun) Recharge() {
	if g.charge == 0 {
		return
	}
	if g.justFired {
		g.justFired = false
		if g.charge >= g.RechargeRate {
			g.charge = 0
		}
		return
	}
	g.charge++
	if g.charge >= g.RechargeRate {
		g.charge = 0
	}
}
