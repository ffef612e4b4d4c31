package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArenaData describes the playing field.
// This is a singleton component.
type ArenaData struct {
	Width       float64
	Height      float64
	PlayerSpawn dmath.Vec2
	// SpawnMin and SpawnMax bound enemy spawn positions, inclusive
	SpawnMin dmath.Vec2
	SpawnMax dmath.Vec2
}

var Arena = donburi.NewComponentType[ArenaData]()

// Contains reports whether p lies within the arena grown by margin.
func (a *ArenaData) Contains(p dmath.Vec2, margin float64) bool {
	return p.X >= -margin && p.Y >= -margin && p.X <= a.Width+margin && p.Y <= a.Height+margin
}

// Clamp returns p limited to the arena bounds.
func (a *ArenaData) Clamp(p dmath.Vec2) dmath.Vec2 {
	p.X = min(max(p.X, 0), a.Width)
	p.Y = min(max(p.Y, 0), a.Height)
	return p
}
