package components

import (
	"math"

	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Kind   cfg.ProjectileKind
	Side   cfg.Side
	Weapon *WeaponData

	Start    dmath.Vec2
	Position dmath.Vec2
	// Heading in degrees, fixed at spawn
	Heading float64

	Range  float64
	Speed  float64
	Damage float64
	Radius float64

	Frame         int
	Frames        int
	FrameDistance float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// Traveled is the distance between the spawn point and the current position.
func (p *ProjectileData) Traveled() float64 {
	return math.Hypot(p.Position.X-p.Start.X, p.Position.Y-p.Start.Y)
}

// Expired reports whether the projectile reached its travel limit.
func (p *ProjectileData) Expired() bool {
	return p.Traveled() >= p.Range
}
