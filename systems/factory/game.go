package factory

import (
	"math/rand"

	"github.com/automoto/circleclash/archetypes"
	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the session singleton holding the game state, the arena,
// the input buffer and the scheduled task queue.
func CreateGame(ecs *ecs.ECS, arena components.ArenaData, src components.InputSource, rng *rand.Rand) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	components.Game.SetValue(game, components.GameData{
		RunID: uuid.NewString(),
		State: cfg.GameReady,
		Rand:  rng,
	})
	components.Arena.SetValue(game, arena)
	components.Input.SetValue(game, components.InputData{Source: src})
	components.Schedule.SetValue(game, components.ScheduleData{})

	return game
}

// CreateWaveManager builds one wave per config entry, all pursuing target.
// No wave is spawned yet.
func CreateWaveManager(ecs *ecs.ECS, waves []cfg.WaveConfig, target *donburi.Entry) *donburi.Entry {
	manager := archetypes.WaveManager.Spawn(ecs)

	data := components.WaveManagerData{Active: -1}
	for _, w := range waves {
		data.Waves = append(data.Waves, &components.WaveData{
			Groups: append([]cfg.WaveGroup(nil), w.Groups...),
			Target: target,
		})
	}
	components.WaveManager.SetValue(manager, data)

	return manager
}
