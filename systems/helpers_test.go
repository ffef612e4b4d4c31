package systems_test

import (
	"math/rand"
	"testing"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/systems"
	"github.com/automoto/circleclash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func testArena() components.ArenaData {
	return components.ArenaData{
		Width:       1280,
		Height:      1280,
		PlayerSpawn: dmath.Vec2{X: 200, Y: 200},
		SpawnMin:    dmath.Vec2{X: 0, Y: 0},
		SpawnMax:    dmath.Vec2{X: 1200, Y: 1200},
	}
}

// newTestWorld returns a RUNNING session without player or waves.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 1280, 1280, cfg.Combat.CellSize, cfg.Combat.CellSize)
	game := factory.CreateGame(e, testArena(), nil, rand.New(rand.NewSource(12345)))
	components.Game.Get(game).State = cfg.GameRunning
	systems.RegisterHandlers(e)
	return e
}

func setState(e *ecs.ECS, state cfg.GameStateID) {
	systems.GetGame(e).State = state
}

// tick advances the clock and runs the scheduled tasks, the way the session
// does at the start of every step.
func tick(e *ecs.ECS, n int) {
	for range n {
		systems.UpdateClock(e)
		systems.UpdateEvents(e)
		systems.UpdateSchedule(e)
	}
}

func character(e *donburi.Entry) *components.CharacterData {
	return components.Character.Get(e)
}

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func projectiles(e *ecs.ECS) []*components.ProjectileData {
	var out []*components.ProjectileData
	components.Projectile.Each(e.World, func(p *donburi.Entry) {
		out = append(out, components.Projectile.Get(p))
	})
	return out
}
