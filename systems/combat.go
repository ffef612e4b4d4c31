package systems

import (
	"math"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves projectile hits. Every projectile of the opposing
// side overlapping a living character is consumed once and its damage is
// applied before the character's state is recomputed.
func UpdateCombat(ecs *ecs.ECS) {
	var targets []*donburi.Entry
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		if components.Character.Get(e).IsAlive() {
			targets = append(targets, e)
		}
	})

	consumed := map[donburi.Entity]bool{}
	for _, target := range targets {
		if !target.Valid() {
			continue
		}
		hits := overlappingProjectiles(ecs, target, consumed)
		if len(hits) == 0 {
			continue
		}

		total := 0.0
		for _, p := range hits {
			total += components.Projectile.Get(p).Damage
			consumed[p.Entity()] = true
			destroyProjectile(ecs, p)
		}
		Damage(ecs, target, total)
	}
}

// overlappingProjectiles returns the opposing projectiles whose hit circle
// intersects the circle of target. Candidates come from the collision space
// when there is one.
func overlappingProjectiles(ecs *ecs.ECS, target *donburi.Entry, consumed map[donburi.Entity]bool) []*donburi.Entry {
	ch := components.Character.Get(target)
	want := ch.Side.Opponent()
	radius := cfg.Combat.CharacterSize / 2

	var hits []*donburi.Entry
	consider := func(p *donburi.Entry) {
		if p == nil || !p.Valid() || consumed[p.Entity()] || !p.HasComponent(components.Projectile) {
			return
		}
		pd := components.Projectile.Get(p)
		if pd.Side != want {
			return
		}
		dist := math.Hypot(pd.Position.X-ch.Position.X, pd.Position.Y-ch.Position.Y)
		if dist < radius+pd.Radius {
			for _, h := range hits {
				if h == p {
					return
				}
			}
			hits = append(hits, p)
		}
	}

	if obj, ok := characterObject(target); ok {
		tag := tags.ResolvPlayerShot
		if want == cfg.SideEnemy {
			tag = tags.ResolvEnemyShot
		}
		if check := obj.Check(0, 0, tag); check != nil {
			for _, o := range check.ObjectsByTags(tag) {
				p, _ := o.Data.(*donburi.Entry)
				consider(p)
			}
		}
		return hits
	}

	components.Projectile.Each(ecs.World, func(p *donburi.Entry) {
		consider(p)
	})
	return hits
}

func characterObject(e *donburi.Entry) (*components.ObjectData, bool) {
	if !e.HasComponent(components.Object) {
		return nil, false
	}
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil || obj.Space == nil {
		return nil, false
	}
	return obj, true
}
