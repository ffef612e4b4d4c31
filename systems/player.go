package systems

import (
	"math"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/events"
	"github.com/automoto/circleclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdatePlayer(ecs *ecs.ECS) {
	state := GameState(ecs)
	score := 0
	if g := GetGame(ecs); g != nil {
		score = g.Score
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateCharacter(ecs, e, state)
		UnlockWeapons(e, score)
	})
}

// UnlockWeapons grants every weapon of the unlock list whose score has been
// reached, in list order.
func UnlockWeapons(e *donburi.Entry, score int) {
	player := components.Player.Get(e)
	for player.Unlocked < len(cfg.Player.Unlocks) {
		u := cfg.Player.Unlocks[player.Unlocked]
		if score < u.Score {
			return
		}
		AddWeapon(e, u.Weapon)
		player.Unlocked++
	}
}

// ResetPlayer returns the player to the arena spawn with full health and no
// weapons. The unlock check re-grants weapons by score afterwards.
func ResetPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	spawn := dmath.Vec2{X: cfg.Arena.PlayerSpawn[0], Y: cfg.Arena.PlayerSpawn[1]}
	if arena := GetArena(ecs); arena != nil {
		spawn = arena.PlayerSpawn
	}
	ResetCharacter(ecs, e, spawn)
	components.Player.Get(e).Unlocked = 0
}

type playerBehavior struct{}

func (playerBehavior) aim(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData) (float64, bool) {
	in := getInput(ecs)
	if in == nil || (in.Pointer.X == ch.Position.X && in.Pointer.Y == ch.Position.Y) {
		return 0, false
	}
	return headingTo(ch.Position, in.Pointer), true
}

func (playerBehavior) move(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData) {
	in := getInput(ecs)
	if in == nil {
		return
	}
	dx, dy := in.Movement.X, in.Movement.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ch.Position.X += dx / length * ch.Speed
	ch.Position.Y += dy / length * ch.Speed

	if arena := GetArena(ecs); arena != nil {
		ch.Position = arena.Clamp(ch.Position)
	}
}

func (playerBehavior) afterUpdate(*ecs.ECS, *donburi.Entry, *components.CharacterData) {}

func (playerBehavior) onKilled(ecs *ecs.ECS, e *donburi.Entry, _ *components.CharacterData) {
	events.PlayerKilledEvent.Publish(ecs.World, events.PlayerKilled{Entity: e.Entity()})
}
