package systems

import (
	"math"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/events"
	"github.com/automoto/circleclash/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	state := GameState(ecs)

	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, e := range enemies {
		updateCharacter(ecs, e, state)
	}
}

// enemyTarget returns the pursued character if it is still in the world.
func enemyTarget(e *donburi.Entry) (*components.CharacterData, bool) {
	en := components.Enemy.Get(e)
	if en.Target == nil || !en.Target.Valid() || !en.Target.HasComponent(components.Character) {
		return nil, false
	}
	return components.Character.Get(en.Target), true
}

type enemyBehavior struct{}

func (enemyBehavior) aim(_ *ecs.ECS, e *donburi.Entry, ch *components.CharacterData) (float64, bool) {
	target, ok := enemyTarget(e)
	if !ok {
		return 0, false
	}
	if target.Position.X == ch.Position.X && target.Position.Y == ch.Position.Y {
		return 0, false
	}
	return headingTo(ch.Position, target.Position), true
}

// move steps toward the target until it is within the active weapon's hit
// radius, then attacks instead.
func (enemyBehavior) move(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData) {
	target, ok := enemyTarget(e)
	if !ok || !target.IsAlive() {
		return
	}

	dx := target.Position.X - ch.Position.X
	dy := target.Position.Y - ch.Position.Y
	dist := math.Hypot(dx, dy)

	radius := 0.0
	if w := ch.Weapon(); w != nil {
		radius = w.HitRadius
	}

	if dist >= radius {
		if dist > 0 {
			ch.Position.X += dx / dist * ch.Speed
			ch.Position.Y += dy / dist * ch.Speed
		}
		return
	}
	Attack(ecs, e)
}

// afterUpdate performs the one-time weapon upgrade of archetypes that have
// one, once their health drops below the configured fraction.
func (enemyBehavior) afterUpdate(_ *ecs.ECS, e *donburi.Entry, ch *components.CharacterData) {
	a := cfg.Archetypes[ch.Archetype]
	if a.Upgrade == cfg.WeaponNone || ch.Upgraded || !ch.CanAct() {
		return
	}
	if ch.Health >= ch.InitialHealth*a.UpgradeBelow {
		return
	}

	ch.Upgraded = true
	if w := ch.Weapon(); w != nil && w.Kind == a.Upgrade {
		return
	}
	if i, ok := ch.HasWeapon(a.Upgrade); ok {
		ch.ActiveWeapon = i
		return
	}
	AddWeapon(e, a.Upgrade)
	ch.ActiveWeapon = len(ch.Weapons) - 1
}

// onKilled awards the points, starts the fade and schedules the removal.
func (enemyBehavior) onKilled(ecs *ecs.ECS, e *donburi.Entry, _ *components.CharacterData) {
	en := components.Enemy.Get(e)
	events.EnemyKilledEvent.Publish(ecs.World, events.EnemyKilled{
		Entity: e.Entity(),
		Points: en.Points,
	})

	if en.Despawning {
		return
	}
	en.Despawning = true
	ScheduleDespawn(ecs, e.Entity(), cfg.Combat.DespawnDelayTicks)

	seconds := float32(cfg.Combat.DespawnDelayTicks) / float32(cfg.C.TPS)
	donburi.Add(e, components.Fade, &components.FadeData{
		Tween: gween.New(1, float32(cfg.Combat.FadeAlpha), seconds, ease.Linear),
		Alpha: 1,
	})
}
