package systems_test

import (
	"testing"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/events"
	"github.com/automoto/circleclash/systems"
	"github.com/automoto/circleclash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testWaves() []cfg.WaveConfig {
	return []cfg.WaveConfig{
		{Groups: []cfg.WaveGroup{{Archetype: cfg.ArchetypeGrunt, Count: 2, Weapon: cfg.WeaponWoodenSword}}},
		{Groups: []cfg.WaveGroup{{Archetype: cfg.ArchetypeBrute, Count: 1, Weapon: cfg.WeaponPrimeSword}}},
	}
}

func newWaveWorld(t *testing.T) (*ecs.ECS, *components.WaveManagerData) {
	t.Helper()
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	factory.CreateWaveManager(e, testWaves(), p)
	return e, systems.GetWaveManager(e)
}

func killWave(e *ecs.ECS, w *components.WaveData) {
	for _, enemy := range systems.AliveEnemies(e, w) {
		systems.Damage(e, enemy, 10000)
	}
}

func TestWaveManagerStartsBeforeFirstWave(t *testing.T) {
	e, m := newWaveWorld(t)
	assert.Equal(t, -1, systems.ActiveWaveIndex(e))
	assert.Nil(t, m.Current())

	systems.SpawnNextWave(e)
	assert.Equal(t, 0, systems.ActiveWaveIndex(e))
	assert.Len(t, systems.AliveEnemies(e, m.Current()), 2)
}

func TestSpawnWaveEnemiesIsIdempotent(t *testing.T) {
	e, m := newWaveWorld(t)
	systems.SpawnNextWave(e)

	assert.Equal(t, 0, systems.SpawnWaveEnemies(e, m.Current()))
	assert.Len(t, m.Current().Enemies, 2)

	count := 0
	components.Enemy.Each(e.World, func(*donburi.Entry) { count++ })
	assert.Equal(t, 2, count)
}

func TestNextWaveOnlyAfterCompletion(t *testing.T) {
	e, m := newWaveWorld(t)
	systems.SpawnNextWave(e)

	systems.SpawnNextWave(e)
	assert.Equal(t, 0, m.Active)

	alive := systems.AliveEnemies(e, m.Current())
	systems.Damage(e, alive[0], 10000)
	systems.SpawnNextWave(e)
	assert.Equal(t, 0, m.Active)
	assert.False(t, systems.WaveComplete(e, m.Current()))

	systems.Damage(e, alive[1], 10000)
	assert.True(t, systems.WaveComplete(e, m.Current()))
	systems.SpawnNextWave(e)
	assert.Equal(t, 1, m.Active)
	assert.True(t, m.Waves[1].Spawned)
}

func TestUnspawnedWaveIsNotComplete(t *testing.T) {
	e, m := newWaveWorld(t)
	systems.SpawnNextWave(e)
	assert.False(t, systems.WaveComplete(e, m.Waves[1]))
}

func TestDespawnedEnemiesCountAsDead(t *testing.T) {
	e, m := newWaveWorld(t)
	systems.SpawnNextWave(e)
	killWave(e, m.Current())

	tick(e, cfg.Combat.DespawnDelayTicks)
	for _, entity := range m.Current().Enemies {
		assert.False(t, e.World.Valid(entity))
	}
	assert.True(t, systems.WaveComplete(e, m.Current()))
}

func TestWinIsSignalledOnce(t *testing.T) {
	e, m := newWaveWorld(t)

	wins := 0
	events.WinReachedEvent.Subscribe(e.World, func(w donburi.World, ev events.WinReached) {
		wins++
		assert.Equal(t, 2, ev.Waves)
	})

	systems.SpawnNextWave(e)
	killWave(e, m.Current())
	systems.UpdateWaves(e)
	require.Equal(t, 1, m.Active)

	killWave(e, m.Current())
	for range 3 {
		systems.SpawnNextWave(e)
		systems.UpdateWaves(e)
	}
	systems.UpdateEvents(e)

	assert.Equal(t, 1, wins)
	assert.True(t, m.WinSignaled)
	assert.Equal(t, 1, m.Active)
	assert.Equal(t, cfg.GameWin, systems.GameState(e))
}

func TestWaveSpawnedIsPublished(t *testing.T) {
	e, m := newWaveWorld(t)

	var spawned []events.WaveSpawned
	events.WaveSpawnedEvent.Subscribe(e.World, func(w donburi.World, ev events.WaveSpawned) {
		spawned = append(spawned, ev)
	})

	systems.SpawnNextWave(e)
	killWave(e, m.Current())
	systems.UpdateWaves(e)
	systems.UpdateEvents(e)

	assert.Equal(t, []events.WaveSpawned{{Index: 0, Enemies: 2}, {Index: 1, Enemies: 1}}, spawned)
}

func TestClearCurrentWave(t *testing.T) {
	e, m := newWaveWorld(t)
	systems.SpawnNextWave(e)
	enemies := append([]donburi.Entity(nil), m.Current().Enemies...)

	systems.ClearCurrentWave(e)

	for _, entity := range enemies {
		assert.False(t, e.World.Valid(entity))
	}
	assert.True(t, m.Current().Spawned)
	assert.True(t, systems.WaveComplete(e, m.Current()))
}

func TestResetWaves(t *testing.T) {
	e, m := newWaveWorld(t)
	systems.SpawnNextWave(e)
	killWave(e, m.Current())
	systems.SpawnNextWave(e)
	killWave(e, m.Current())
	systems.SpawnNextWave(e)
	require.True(t, m.WinSignaled)

	systems.ResetWaves(e)

	assert.Equal(t, 0, m.Active)
	assert.False(t, m.WinSignaled)
	assert.True(t, m.Waves[0].Spawned)
	assert.False(t, m.Waves[1].Spawned)
	assert.Len(t, systems.AliveEnemies(e, m.Current()), 2)
	assert.Empty(t, m.Waves[1].Enemies)
}

func TestWaveSpeedsAreUniqueAndInRange(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	w := &components.WaveData{
		Groups: []cfg.WaveGroup{
			{Archetype: cfg.ArchetypeGrunt, Count: 6, Weapon: cfg.WeaponWoodenSword},
			{Archetype: cfg.ArchetypeBrute, Count: 3, Weapon: cfg.WeaponPrimeSword},
		},
		Target: p,
	}

	require.Equal(t, 9, systems.SpawnWaveEnemies(e, w))

	seen := map[float64]bool{}
	for _, enemy := range systems.AliveEnemies(e, w) {
		ch := character(enemy)
		a := cfg.Archetypes[ch.Archetype]
		assert.GreaterOrEqual(t, ch.Speed, a.MinSpeed)
		assert.LessOrEqual(t, ch.Speed, a.MaxSpeed)
		assert.False(t, seen[ch.Speed], "speed %v drawn twice", ch.Speed)
		seen[ch.Speed] = true

		assert.GreaterOrEqual(t, ch.Position.X, 0.0)
		assert.LessOrEqual(t, ch.Position.X, 1200.0)
		assert.GreaterOrEqual(t, ch.Position.Y, 0.0)
		assert.LessOrEqual(t, ch.Position.Y, 1200.0)

		assert.Equal(t, p, components.Enemy.Get(enemy).Target)
		assert.Equal(t, a.Points, components.Enemy.Get(enemy).Points)
	}
}

func TestDefaultWaveTable(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	factory.CreateWaveManager(e, cfg.Waves, p)
	m := systems.GetWaveManager(e)
	require.Len(t, m.Waves, 4)

	counts := []int{2, 2, 3, 1}
	for i, want := range counts {
		systems.SpawnNextWave(e)
		require.Equal(t, i, m.Active)
		assert.Len(t, m.Current().Enemies, want, "wave %d", i+1)
		killWave(e, m.Current())
	}

	boss := e.World.Entry(m.Waves[3].Enemies[0])
	assert.Equal(t, cfg.ArchetypeWarlord, character(boss).Archetype)
	assert.Equal(t, cfg.WeaponDoubleAxe, character(boss).Weapon().Kind)
}
