package factory

import (
	"github.com/automoto/circleclash/archetypes"
	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile of w at origin travelling along
// heading (degrees) and adds it to the weapon's live set. The projectile
// carries the weapon's damage and the side of its wielder.
func CreateProjectile(ecs *ecs.ECS, w *components.WeaponData, side cfg.Side, origin dmath.Vec2, heading float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	pc := cfg.Projectiles[w.Projectile]

	components.Projectile.SetValue(p, components.ProjectileData{
		Kind:          w.Projectile,
		Side:          side,
		Weapon:        w,
		Start:         origin,
		Position:      origin,
		Heading:       heading,
		Range:         pc.Range,
		Speed:         pc.Speed,
		Damage:        w.Damage,
		Radius:        pc.Radius(),
		Frames:        max(pc.Frames, 1),
		FrameDistance: pc.FrameDistance,
	})

	tag := tags.ResolvPlayerShot
	if side == cfg.SideEnemy {
		tag = tags.ResolvEnemyShot
	}
	attachObject(ecs, p, origin.X, origin.Y, pc.Size, "projectile", tag)

	w.Live = append(w.Live, p)
	return p
}
