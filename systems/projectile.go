package systems

import (
	"math"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// advanceProjectile moves p one step along its heading while the game is
// RUNNING. It returns false once p has expired, either by reaching its travel
// limit or by leaving the arena.
func advanceProjectile(e *donburi.Entry, state cfg.GameStateID, arena *components.ArenaData) bool {
	p := components.Projectile.Get(e)

	if state == cfg.GameRunning {
		rad := p.Heading * math.Pi / 180
		p.Position.X += p.Speed * math.Cos(rad)
		p.Position.Y += p.Speed * math.Sin(rad)
		syncObject(e, p.Position)
	}

	if p.Expired() {
		return false
	}
	if arena != nil && !arena.Contains(p.Position, cfg.Combat.CullMargin) {
		return false
	}

	if p.FrameDistance > 0 {
		frame := int(p.Traveled() / p.FrameDistance)
		p.Frame = min(max(p.Frame, frame), p.Frames-1)
	}
	return true
}

// destroyProjectile removes e from the world, the collision space and the
// live set of its weapon. Calling it twice is harmless.
func destroyProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	p := components.Projectile.Get(e)
	if p.Weapon != nil {
		p.Weapon.Release(e)
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(e)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
