package systems

import (
	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// fireWeapon spawns the projectiles of one attack. Spread weapons fire a fan
// centred on heading, one projectile every SpreadStep degrees.
func fireWeapon(ecs *ecs.ECS, w *components.WeaponData, side cfg.Side, origin dmath.Vec2, heading float64) []*donburi.Entry {
	if w.Spread <= 0 {
		return []*donburi.Entry{factory.CreateProjectile(ecs, w, side, origin, heading)}
	}

	step := cfg.Combat.SpreadStep
	count := max(w.Spread/step, 1)
	angle := heading - float64((count-1)/2*step)

	fired := make([]*donburi.Entry, 0, count)
	for range count {
		fired = append(fired, factory.CreateProjectile(ecs, w, side, origin, angle))
		angle += float64(step)
	}
	return fired
}

// updateWeapons advances the live projectiles of every carried weapon, not
// only the active one.
func updateWeapons(ecs *ecs.ECS, ch *components.CharacterData, state cfg.GameStateID) {
	arena := GetArena(ecs)
	for _, w := range ch.Weapons {
		updateWeapon(ecs, w, state, arena)
	}
}

func updateWeapon(ecs *ecs.ECS, w *components.WeaponData, state cfg.GameStateID, arena *components.ArenaData) {
	var toRemove []*donburi.Entry

	for _, p := range w.Live {
		if !p.Valid() {
			toRemove = append(toRemove, p)
			continue
		}
		if !advanceProjectile(p, state, arena) {
			toRemove = append(toRemove, p)
		}
	}

	for _, p := range toRemove {
		w.Release(p)
		destroyProjectile(ecs, p)
	}
}

// releaseProjectiles destroys every live projectile of w.
func releaseProjectiles(ecs *ecs.ECS, w *components.WeaponData) {
	live := append([]*donburi.Entry(nil), w.Live...)
	for _, p := range live {
		destroyProjectile(ecs, p)
	}
	w.Live = nil
}
