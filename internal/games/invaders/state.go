package invaders

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/devmabbott/Invaders/internal/config"
	"github.com/devmabbott/Invaders/internal/core"
	"github.com/devmabbott/Invaders/internal/engine"
	"github.com/devmabbott/Invaders/internal/sprite"
)

// InputFlags is the held state of every game key.
type InputFlags struct {
	MoveUp    bool
	MoveDown  bool
	MoveLeft  bool
	MoveRight bool
	Fire      bool
}

// Set records a press (down) or release of k.
func (f *InputFlags) Set(k core.Key, down bool) {
	switch k {
	case core.KeyUp:
		f.MoveUp = down
	case core.KeyDown:
		f.MoveDown = down
	case core.KeyLeft:
		f.MoveLeft = down
	case core.KeyRight:
		f.MoveRight = down
	case core.KeyFire:
		f.Fire = down
	}
}

// CollisionResolver runs at the end of every tick, after all entities moved.
// It may remove bullets and aliens from the state. The game installs none.
type CollisionResolver interface {
	Resolve(s *State)
}

// ResolverFunc adapts a plain function to CollisionResolver.
type ResolverFunc func(s *State)

// Resolve calls f(s).
func (f ResolverFunc) Resolve(s *State) { f(s) }

// State is the whole simulation. Only the loop goroutine touches it.
type State struct {
	Field         Playfield
	Player        Ship
	PlayerBullets []Bullet
	AlienBullets  []Bullet
	Aliens        []Alien
	Input         InputFlags
	Resolver      CollisionResolver

	bulletSprites [2]*sprite.Sprite // Indexed by Side
	rng           *rand.Rand
	tick          int
	shots         [2]int   // Bullets created, indexed by Side
	floor         int      // Lowest Y the formation's bottom edge may reach
	moves         [][2]int // Per-alien pattern steps, reused every tick
}

// New builds the opening state: the player centred at the bottom of the
// playfield and the alien formation laid out from the top.
func New(cfg config.InvadersConfig, reg *sprite.Registry, seed int64) (*State, error) {
	field := NewPlayfield(cfg.Playfield)

	playerSprite, err := reg.Get(cfg.Player.Sprite)
	if err != nil {
		return nil, fmt.Errorf("invaders: player: %w", err)
	}
	playerBullet, err := reg.Get(cfg.Player.Gun.BulletSprite)
	if err != nil {
		return nil, fmt.Errorf("invaders: player gun: %w", err)
	}
	alienBullet, err := reg.Get(cfg.Aliens.Gun.BulletSprite)
	if err != nil {
		return nil, fmt.Errorf("invaders: alien gun: %w", err)
	}
	kind, err := ParsePatternKind(cfg.Aliens.Pattern)
	if err != nil {
		return nil, err
	}

	s := &State{
		Field:         field,
		bulletSprites: [2]*sprite.Sprite{SidePlayer: playerBullet, SideAlien: alienBullet},
		rng:           rand.New(rand.NewSource(seed)),
	}

	pg := cfg.Player.Gun
	s.Player = Ship{
		Speed:  cfg.Player.Speed,
		Sprite: playerSprite,
		Gun:    NewGun(SidePlayer, pg.RechargeRate, pg.Damage, Up(pg.BulletSpeed)),
	}
	w, h := s.Player.Size(field)
	s.Player.X, s.Player.Y = field.Bounds().ClampPoint((field.Width()-w)/2, field.Height()-h, w, h)
	s.Player.beginTick()
	s.floor = s.Player.Y - cfg.Aliens.FloorGap*field.Scale

	formation := cfg.Aliens.Formation
	ag := cfg.Aliens.Gun
	for r, row := range cfg.Aliens.Rows {
		spr, err := reg.Get(row.Sprite)
		if err != nil {
			return nil, fmt.Errorf("invaders: alien row %d: %w", r, err)
		}
		for c := 0; c < formation.Cols; c++ {
			a := Alien{
				Ship: Ship{
					X:      (formation.Left + c*formation.SpacingX) * field.Scale,
					Y:      (formation.Top + r*formation.SpacingY) * field.Scale,
					Sprite: spr,
					Gun:    NewGun(SideAlien, ag.RechargeRate, ag.Damage, Down(ag.BulletSpeed)),
				},
				Pattern: Pattern{
					Kind:       kind,
					Speed:      cfg.Aliens.Speed,
					StepEvery:  cfg.Aliens.StepEvery,
					MarchSteps: cfg.Aliens.MarchSteps,
				},
				Reward:     row.Reward,
				FireChance: cfg.Aliens.FireChance,
			}
			a.beginTick()
			s.Aliens = append(s.Aliens, a)
		}
	}

	return s, nil
}

// HandleEvent applies a key press or release to the input flags.
func (s *State) HandleEvent(ev core.Event) {
	switch ev.Type {
	case core.EventKeyDown:
		s.Input.Set(ev.Key, true)
	case core.EventKeyUp:
		s.Input.Set(ev.Key, false)
	}
}

// Advance runs one simulation tick. The step order is fixed: the player moves,
// fires and recharges, bullets fly, the alien formation moves, every alien
// fires and recharges, and finally the collision resolver runs if one is installed.
func (s *State) Advance() {
	s.tick++
	s.Player.beginTick()
	for i := range s.Aliens {
		s.Aliens[i].beginTick()
	}

	// Flags combine per axis, so diagonals cover more ground than straight moves.
	if s.Input.MoveUp {
		s.Player.Move(DirUp, s.Field)
	}
	if s.Input.MoveDown {
		s.Player.Move(DirDown, s.Field)
	}
	if s.Input.MoveLeft {
		s.Player.Move(DirLeft, s.Field)
	}
	if s.Input.MoveRight {
		s.Player.Move(DirRight, s.Field)
	}

	if s.Input.Fire {
		x, y := s.Player.Muzzle(s.Field)
		if b, ok := s.Player.Gun.Fire(x, y); ok {
			s.PlayerBullets = append(s.PlayerBullets, b)
			s.shots[SidePlayer]++
		}
	}
	s.Player.Gun.Recharge()

	s.PlayerBullets = s.advanceBullets(s.PlayerBullets, SidePlayer)
	s.AlienBullets = s.advanceBullets(s.AlienBullets, SideAlien)

	s.marchFormation()
	for i := range s.Aliens {
		a := &s.Aliens[i]
		if a.FireChance > 0 && s.rng.Float64() < a.FireChance {
			x, y := a.Muzzle(s.Field)
			if b, ok := a.Gun.Fire(x, y); ok {
				s.AlienBullets = append(s.AlienBullets, b)
				s.shots[SideAlien]++
			}
		}
		a.Gun.Recharge()
	}

	if s.Resolver != nil {
		s.Resolver.Resolve(s)
	}
}

// marchFormation steps every alien's pattern and moves the formation as one
// body. Sideways steps stop at the playfield edges and downward steps stop at
// the floor, so the rows keep their spacing.
func (s *State) marchFormation() {
	if len(s.Aliens) == 0 {
		return
	}

	s.moves = s.moves[:0]
	left, right, bottom := math.MaxInt, math.MinInt, math.MinInt
	for i := range s.Aliens {
		a := &s.Aliens[i]
		dx, dy := a.Pattern.Next()
		s.moves = append(s.moves, [2]int{dx, dy})

		w, h := a.Size(s.Field)
		left = min(left, a.X)
		right = max(right, a.X+w)
		bottom = max(bottom, a.Y+h)
	}

	minDX := min(-left, 0)
	maxDX := max(s.Field.Width()-right, 0)
	maxDY := max(s.floor-bottom, 0)
	for i, m := range s.moves {
		dx := core.Clamp(m[0], minDX, maxDX)
		dy := min(m[1], maxDY)
		if dx != 0 || dy != 0 {
			s.Aliens[i].Translate(dx, dy, s.Field)
		}
	}
}

// advanceBullets moves every bullet and compacts out the ones that left the
// playfield, reusing the slice's backing array.
func (s *State) advanceBullets(bullets []Bullet, side Side) []Bullet {
	bounds := s.Field.Bounds()
	live := bullets[:0]
	for _, b := range bullets {
		if b.Side != side {
			panic(fmt.Sprintf("invaders: %s bullet in %s collection", b.Side, side))
		}
		b.Advance()
		if bounds.Contains(b.X, b.Y) {
			live = append(live, b)
		}
	}
	clear(bullets[len(live):])
	return live
}

// Tick returns the number of ticks run so far.
func (s *State) Tick() int { return s.tick }

// Shots returns how many bullets side has fired.
func (s *State) Shots(side Side) int { return s.shots[side] }

// Render draws every entity alpha of the way towards its next position.
// It reads the state and never changes it.
func (s *State) Render(dst engine.Surface, alpha float64) {
	alpha = core.ClampF(alpha, 0, 1)

	for i := range s.Aliens {
		s.drawShip(dst, &s.Aliens[i].Ship, alpha)
	}
	s.drawShip(dst, &s.Player, alpha)
	s.drawBullets(dst, s.PlayerBullets, s.bulletSprites[SidePlayer], alpha)
	s.drawBullets(dst, s.AlienBullets, s.bulletSprites[SideAlien], alpha)
}

func (s *State) drawShip(dst engine.Surface, ship *Ship, alpha float64) {
	x, y := ship.Extrapolate(alpha)
	cx, cy := s.Field.ToCell(int(math.Floor(x)), int(math.Floor(y)))
	dst.Blit(ship.Sprite, cx, cy)
}

func (s *State) drawBullets(dst engine.Surface, bullets []Bullet, spr *sprite.Sprite, alpha float64) {
	for _, b := range bullets {
		nx, ny := b.Peek()
		x := float64(b.X) + float64(nx-b.X)*alpha
		y := float64(b.Y) + float64(ny-b.Y)*alpha
		cx, cy := s.Field.ToCell(int(math.Floor(x)), int(math.Floor(y)))
		dst.Blit(spr, cx, cy)
	}
}
