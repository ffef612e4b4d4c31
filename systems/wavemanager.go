package systems

import (
	"github.com/automoto/circleclash/components"
	"github.com/automoto/circleclash/events"
	"github.com/yohamta/donburi/ecs"
)

// GetWaveManager returns the wave manager singleton, or nil if none was created.
func GetWaveManager(ecs *ecs.ECS) *components.WaveManagerData {
	ent, ok := components.WaveManager.First(ecs.World)
	if !ok {
		return nil
	}
	return components.WaveManager.Get(ent)
}

// ActiveWaveIndex returns the index of the active wave, -1 before the first.
func ActiveWaveIndex(ecs *ecs.ECS) int {
	if m := GetWaveManager(ecs); m != nil {
		return m.Active
	}
	return -1
}

// UpdateWaves moves on to the next wave once the active one is complete.
func UpdateWaves(ecs *ecs.ECS) {
	m := GetWaveManager(ecs)
	if m == nil {
		return
	}
	if w := m.Current(); w != nil && WaveComplete(ecs, w) {
		SpawnNextWave(ecs)
	}
}

// SpawnNextWave spawns the first wave, or the following one when the active
// wave is complete. Completing the last wave publishes the win once.
func SpawnNextWave(ecs *ecs.ECS) {
	m := GetWaveManager(ecs)
	if m == nil || len(m.Waves) == 0 {
		return
	}

	if m.Active == -1 {
		spawnWaveAt(ecs, m, 0)
		return
	}

	current := m.Current()
	if current == nil || !WaveComplete(ecs, current) {
		return
	}

	if m.IsLast() {
		if !m.WinSignaled {
			m.WinSignaled = true
			events.WinReachedEvent.Publish(ecs.World, events.WinReached{Waves: len(m.Waves)})
		}
		return
	}
	spawnWaveAt(ecs, m, m.Active+1)
}

func spawnWaveAt(ecs *ecs.ECS, m *components.WaveManagerData, index int) {
	m.Active = index
	n := SpawnWaveEnemies(ecs, m.Waves[index])
	events.WaveSpawnedEvent.Publish(ecs.World, events.WaveSpawned{Index: index, Enemies: n})
}

// ClearCurrentWave removes the enemies of the active wave.
func ClearCurrentWave(ecs *ecs.ECS) {
	m := GetWaveManager(ecs)
	if m == nil {
		return
	}
	if w := m.Current(); w != nil {
		ClearWave(ecs, w)
	}
}

// ResetWaves clears the active wave, marks every wave unspawned and spawns
// the first one again.
func ResetWaves(ecs *ecs.ECS) {
	m := GetWaveManager(ecs)
	if m == nil || len(m.Waves) == 0 {
		return
	}
	ClearCurrentWave(ecs)
	for _, w := range m.Waves {
		ClearWave(ecs, w)
		w.Spawned = false
	}
	m.WinSignaled = false
	spawnWaveAt(ecs, m, 0)
}
