package components

import (
	"math/rand"

	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
)

// GameData stores the session state.
// This is a singleton component - only one session exists at a time.
type GameData struct {
	RunID string
	State cfg.GameStateID
	Score int
	// Tick counts simulation steps since the session was created
	Tick uint64
	// Rand drives enemy placement and speed draws
	Rand *rand.Rand
}

var Game = donburi.NewComponentType[GameData]()

// Running reports whether gameplay advances this tick.
func (g *GameData) Running() bool {
	return g.State == cfg.GameRunning
}
