package systems

import (
	"math"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// behavior is the per-archetype part of a character update.
type behavior interface {
	// aim returns the heading the character wants to face, in degrees
	aim(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData) (float64, bool)
	move(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData)
	afterUpdate(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData)
	onKilled(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData)
}

func behaviorOf(e *donburi.Entry) behavior {
	if e.HasComponent(tags.Player) {
		return playerBehavior{}
	}
	return enemyBehavior{}
}

// updateCharacter runs one tick of the shared character update.
func updateCharacter(ecs *ecs.ECS, e *donburi.Entry, state cfg.GameStateID) {
	ch := components.Character.Get(e)
	b := behaviorOf(e)

	applyGameState(ch, state)

	// HIT only flashes for a moment before falling back to the resting state
	if ch.State == cfg.Hit {
		ch.HitTimer++
		if ch.HitTimer >= cfg.Combat.HitStateTicks {
			ch.State = ch.RestingState()
			ch.HitTimer = 0
		}
	}

	if ch.CanAct() {
		if heading, ok := b.aim(ecs, e, ch); ok {
			ch.Rotation = normalizeDegrees(heading)
		}
		b.move(ecs, e, ch)
		syncObject(e, ch.Position)
	}

	updateWeapons(ecs, ch, state)
	b.afterUpdate(ecs, e, ch)

	ch.SinceAttack++
}

// applyGameState freezes living characters while the game is not being
// played and thaws them once it is RUNNING again.
func applyGameState(ch *components.CharacterData, state cfg.GameStateID) {
	if ch.State == cfg.Killed {
		return
	}
	if state.Freezes() {
		ch.State = cfg.Immovable
		return
	}
	if state == cfg.GameRunning && ch.State == cfg.Immovable {
		ch.State = ch.RestingState()
		ch.HitTimer = 0
	}
}

// SetHealth assigns a new health value and derives the new state from it.
// Entering KILLED triggers the archetype's kill effects exactly once.
func SetHealth(ecs *ecs.ECS, e *donburi.Entry, value float64) {
	ch := components.Character.Get(e)
	if ch.State == cfg.Killed {
		return
	}

	value = min(max(value, 0), ch.InitialHealth)
	next := ch.HealthState(value)
	ch.Health = value

	switch {
	case next == cfg.Killed:
		ch.State = cfg.Killed
		ch.HitTimer = 0
		behaviorOf(e).onKilled(ecs, e, ch)
	case ch.State == cfg.Immovable:
		// frozen characters only change state on death
	default:
		ch.State = next
		ch.HitTimer = 0
	}
}

// Damage subtracts amount from the character's health.
func Damage(ecs *ecs.ECS, e *donburi.Entry, amount float64) {
	ch := components.Character.Get(e)
	SetHealth(ecs, e, ch.Health-amount)
}

// Attack fires the active weapon along the current rotation. It reports
// whether anything was fired.
func Attack(ecs *ecs.ECS, e *donburi.Entry) bool {
	ch := components.Character.Get(e)
	w := ch.Weapon()
	if !ch.CanAct() || w == nil || ch.SinceAttack < w.FireRate {
		return false
	}
	fireWeapon(ecs, w, ch.Side, ch.Position, ch.Rotation)
	ch.SinceAttack = 0
	return true
}

// SetActiveWeapon selects a weapon by index, wrapping around the inventory
// in both directions.
func SetActiveWeapon(e *donburi.Entry, index int) {
	ch := components.Character.Get(e)
	n := len(ch.Weapons)
	if n == 0 {
		ch.ActiveWeapon = -1
		return
	}
	if !ch.CanAct() {
		return
	}
	ch.ActiveWeapon = ((index % n) + n) % n
}

// CycleWeapon moves the weapon selection by delta.
func CycleWeapon(e *donburi.Entry, delta int) {
	ch := components.Character.Get(e)
	SetActiveWeapon(e, ch.ActiveWeapon+delta)
}

// AddWeapon puts a new weapon of kind k into the inventory. The first
// weapon becomes the active one.
func AddWeapon(e *donburi.Entry, k cfg.WeaponKind) *components.WeaponData {
	ch := components.Character.Get(e)
	w := components.NewWeaponData(k, e)
	ch.Weapons = append(ch.Weapons, w)
	if ch.ActiveWeapon < 0 {
		ch.ActiveWeapon = 0
	}
	return w
}

// ResetCharacter restores full health at pos and empties the inventory.
// This is the only way out of KILLED.
func ResetCharacter(ecs *ecs.ECS, e *donburi.Entry, pos dmath.Vec2) {
	ch := components.Character.Get(e)
	for _, w := range ch.Weapons {
		releaseProjectiles(ecs, w)
	}
	ch.Weapons = nil
	ch.ActiveWeapon = -1
	ch.Health = ch.InitialHealth
	ch.State = cfg.Default
	ch.HitTimer = 0
	ch.SinceAttack = 0
	ch.Upgraded = false
	ch.Position = pos
	syncObject(e, pos)
}

// headingTo returns the angle from one point to another in degrees.
func headingTo(from, to dmath.Vec2) float64 {
	return normalizeDegrees(math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi)
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func syncObject(e *donburi.Entry, pos dmath.Vec2) {
	if !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
		obj.Centre(pos.X, pos.Y)
	}
}
