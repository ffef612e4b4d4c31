package systems

import (
	"math/rand"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// maxSpeedDraws bounds the redraws for a unique speed. Archetypes with a
// fixed speed can never produce a second unique value.
const maxSpeedDraws = 64

// SpawnWaveEnemies creates the enemies of w. Calling it again on a spawned
// wave does nothing. It returns the number of enemies created.
func SpawnWaveEnemies(ecs *ecs.ECS, w *components.WaveData) int {
	if w.Spawned {
		return 0
	}
	rng := waveRand(ecs)
	arena := GetArena(ecs)

	used := map[float64]bool{}
	for _, g := range w.Groups {
		a := cfg.Archetypes[g.Archetype]
		for range g.Count {
			speed := uniqueSpeed(rng, a.MinSpeed, a.MaxSpeed, used)
			used[speed] = true
			pos := spawnPosition(rng, arena)
			enemy := factory.CreateEnemy(ecs, g.Archetype, pos, speed, w.Target, g.Weapon)
			w.Enemies = append(w.Enemies, enemy.Entity())
		}
	}
	w.Spawned = true
	return len(w.Enemies)
}

// WaveComplete reports whether w was spawned and none of its enemies is
// alive. Enemies already removed from the world count as dead.
func WaveComplete(ecs *ecs.ECS, w *components.WaveData) bool {
	if !w.Spawned {
		return false
	}
	for _, entity := range w.Enemies {
		if !ecs.World.Valid(entity) {
			continue
		}
		e := ecs.World.Entry(entity)
		if e.HasComponent(components.Character) && components.Character.Get(e).IsAlive() {
			return false
		}
	}
	return true
}

// ClearWave removes every remaining enemy of w. The wave stays spawned.
func ClearWave(ecs *ecs.ECS, w *components.WaveData) {
	for _, entity := range w.Enemies {
		if ecs.World.Valid(entity) {
			DespawnEnemy(ecs, ecs.World.Entry(entity))
		}
	}
	w.Enemies = nil
}

// AliveEnemies returns the living enemies of w.
func AliveEnemies(ecs *ecs.ECS, w *components.WaveData) []*donburi.Entry {
	var alive []*donburi.Entry
	for _, entity := range w.Enemies {
		if !ecs.World.Valid(entity) {
			continue
		}
		e := ecs.World.Entry(entity)
		if components.Character.Get(e).IsAlive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// uniqueSpeed draws a speed in [lo, hi] not yet in used, giving up after
// maxSpeedDraws attempts.
func uniqueSpeed(rng *rand.Rand, lo, hi float64, used map[float64]bool) float64 {
	speed := lo
	for range maxSpeedDraws {
		speed = lo + rng.Float64()*(hi-lo)
		if !used[speed] {
			return speed
		}
	}
	return speed
}

func spawnPosition(rng *rand.Rand, arena *components.ArenaData) dmath.Vec2 {
	lo := dmath.Vec2{X: cfg.Arena.SpawnArea[0], Y: cfg.Arena.SpawnArea[1]}
	hi := dmath.Vec2{X: cfg.Arena.SpawnArea[2], Y: cfg.Arena.SpawnArea[3]}
	if arena != nil {
		lo, hi = arena.SpawnMin, arena.SpawnMax
	}
	return dmath.Vec2{X: randBetween(rng, lo.X, hi.X), Y: randBetween(rng, lo.Y, hi.Y)}
}

// randBetween returns a whole number in [lo, hi].
func randBetween(rng *rand.Rand, lo, hi float64) float64 {
	span := int(hi) - int(lo)
	if span <= 0 {
		return float64(int(lo))
	}
	return float64(int(lo) + rng.Intn(span+1))
}

func waveRand(ecs *ecs.ECS) *rand.Rand {
	if g := GetGame(ecs); g != nil && g.Rand != nil {
		return g.Rand
	}
	return rand.New(rand.NewSource(1))
}
