package systems

import (
	"log"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/events"
	"github.com/automoto/circleclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetGame returns the session singleton, or nil if none was created.
func GetGame(ecs *ecs.ECS) *components.GameData {
	ent, ok := components.Game.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Game.Get(ent)
}

// GetArena returns the arena singleton, or nil if none was created.
func GetArena(ecs *ecs.ECS) *components.ArenaData {
	ent, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(ent)
}

// GameState returns the session state. Without a session the world is
// treated as running.
func GameState(ecs *ecs.ECS) cfg.GameStateID {
	if g := GetGame(ecs); g != nil {
		return g.State
	}
	return cfg.GameRunning
}

// PlayerEntry returns the player, if one exists.
func PlayerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// WithRunningCheck wraps a system to skip execution unless the game is RUNNING.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if g := GetGame(e); g != nil && !g.Running() {
			return
		}
		system(e)
	}
}

// UpdateClock advances the session tick counter. It runs first so that
// everything scheduled during a tick sees the same tick value.
func UpdateClock(ecs *ecs.ECS) {
	if g := GetGame(ecs); g != nil {
		g.Tick++
	}
}

// RegisterHandlers subscribes the session to the notifications published by
// characters and waves.
func RegisterHandlers(ecs *ecs.ECS) {
	events.EnemyKilledEvent.Subscribe(ecs.World, func(w donburi.World, ev events.EnemyKilled) {
		if g := GetGame(ecs); g != nil {
			g.Score += ev.Points
		}
	})
	events.PlayerKilledEvent.Subscribe(ecs.World, func(w donburi.World, ev events.PlayerKilled) {
		g := GetGame(ecs)
		if g == nil || g.State == cfg.GameQuit {
			return
		}
		g.State = cfg.GameOver
		log.Printf("[%s] game over, score %d", g.RunID, g.Score)
	})
	events.WinReachedEvent.Subscribe(ecs.World, func(w donburi.World, ev events.WinReached) {
		g := GetGame(ecs)
		if g == nil || g.State != cfg.GameRunning {
			return
		}
		g.State = cfg.GameWin
		log.Printf("[%s] all %d waves cleared, score %d", g.RunID, ev.Waves, g.Score)
	})
	events.WaveSpawnedEvent.Subscribe(ecs.World, func(w donburi.World, ev events.WaveSpawned) {
		g := GetGame(ecs)
		if g == nil {
			return
		}
		log.Printf("[%s] wave %d spawned with %d enemies", g.RunID, ev.Index+1, ev.Enemies)
	})
}

// UpdateEvents delivers the notifications queued during the previous tick.
func UpdateEvents(ecs *ecs.ECS) {
	events.Dispatch(ecs.World)
}

// StartGame moves a READY session to RUNNING.
func StartGame(ecs *ecs.ECS) {
	if g := GetGame(ecs); g != nil && g.State == cfg.GameReady {
		g.State = cfg.GameRunning
		log.Printf("[%s] game started", g.RunID)
	}
}

// TogglePause switches between RUNNING and PAUSED. Other states are left alone.
func TogglePause(ecs *ecs.ECS) {
	g := GetGame(ecs)
	if g == nil {
		return
	}
	switch g.State {
	case cfg.GameRunning:
		g.State = cfg.GamePaused
	case cfg.GamePaused:
		g.State = cfg.GameRunning
	}
}

// RestartGame starts a new round after a loss or a win: the player is reset,
// the current wave is cleared, the score is zeroed and the waves start over.
func RestartGame(ecs *ecs.ECS) {
	g := GetGame(ecs)
	if g == nil || (g.State != cfg.GameOver && g.State != cfg.GameWin) {
		return
	}

	if player, ok := PlayerEntry(ecs); ok {
		ResetPlayer(ecs, player)
	}
	ClearCurrentWave(ecs)
	g.Score = 0
	g.State = cfg.GameRunning
	ResetWaves(ecs)

	log.Printf("[%s] game restarted", g.RunID)
}

// SkipWave removes the enemies of the active wave and moves on.
func SkipWave(ecs *ecs.ECS) {
	if GameState(ecs) != cfg.GameRunning {
		return
	}
	ClearCurrentWave(ecs)
	SpawnNextWave(ecs)
}

// QuitGame marks the session as finished.
func QuitGame(ecs *ecs.ECS) {
	if g := GetGame(ecs); g != nil {
		g.State = cfg.GameQuit
	}
}
