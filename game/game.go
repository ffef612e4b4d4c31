// Package game wires a complete arena session: the world, its singletons
// and the fixed per-tick system order. It has no rendering dependency.
package game

import (
	"log"
	"math/rand"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/systems"
	"github.com/automoto/circleclash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type Options struct {
	Arena components.ArenaData
	Input components.InputSource
	Seed  int64
	Waves []cfg.WaveConfig
}

// DefaultArena is the arena used when no map is loaded.
func DefaultArena() components.ArenaData {
	return components.ArenaData{
		Width:       cfg.Arena.Width,
		Height:      cfg.Arena.Height,
		PlayerSpawn: dmath.Vec2{X: cfg.Arena.PlayerSpawn[0], Y: cfg.Arena.PlayerSpawn[1]},
		SpawnMin:    dmath.Vec2{X: cfg.Arena.SpawnArea[0], Y: cfg.Arena.SpawnArea[1]},
		SpawnMax:    dmath.Vec2{X: cfg.Arena.SpawnArea[2], Y: cfg.Arena.SpawnArea[3]},
	}
}

type Game struct {
	ECS    *ecs.ECS
	Player *donburi.Entry
}

// New creates a READY session with the player placed and the first wave
// spawned.
func New(opts Options) *Game {
	if opts.Arena.Width == 0 || opts.Arena.Height == 0 {
		opts.Arena = DefaultArena()
	}
	if opts.Waves == nil {
		opts.Waves = cfg.Waves
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateEvents)
	ecs.AddSystem(systems.UpdateSchedule)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateWaves))
	ecs.AddSystem(systems.UpdateFades)

	systems.RegisterHandlers(ecs)

	factory.CreateSpace(ecs, int(opts.Arena.Width), int(opts.Arena.Height), cfg.Combat.CellSize, cfg.Combat.CellSize)
	factory.CreateGame(ecs, opts.Arena, opts.Input, rand.New(rand.NewSource(opts.Seed)))
	player := factory.CreatePlayer(ecs, opts.Arena.PlayerSpawn)
	factory.CreateWaveManager(ecs, opts.Waves, player)
	systems.SpawnNextWave(ecs)

	g := &Game{ECS: ecs, Player: player}
	log.Printf("[%s] arena %.0fx%.0f ready, %d waves", g.RunID(), opts.Arena.Width, opts.Arena.Height, len(opts.Waves))
	return g
}

// Update advances the simulation by one tick.
func (g *Game) Update() {
	g.ECS.Update()
}

func (g *Game) data() *components.GameData {
	return systems.GetGame(g.ECS)
}

func (g *Game) RunID() string {
	return g.data().RunID
}

func (g *Game) State() cfg.GameStateID {
	return g.data().State
}

func (g *Game) Score() int {
	return g.data().Score
}

func (g *Game) Tick() uint64 {
	return g.data().Tick
}

// Wave returns the 1-based number of the active wave, 0 before the first.
func (g *Game) Wave() int {
	return systems.ActiveWaveIndex(g.ECS) + 1
}

// PlayerCharacter returns the read-only view the HUD uses.
func (g *Game) PlayerCharacter() *components.CharacterData {
	return components.Character.Get(g.Player)
}

// Finished reports whether the session was quit.
func (g *Game) Finished() bool {
	return g.State() == cfg.GameQuit
}
