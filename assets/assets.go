package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/circleclash/components"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var assetFS embed.FS

var (
	ErrNoPlayerSpawn = errors.New("no player spawn")
	ErrOutOfBounds   = errors.New("spawn outside the arena")
)

// LoadArena reads a Tiled map and returns the arena it describes. The map
// size gives the bounds, the first object of the "PlayerSpawn" group the
// player start and the first object of the "EnemySpawn" group the area
// enemies are placed in. Without an "EnemySpawn" group enemies may spawn
// anywhere in the arena.
func LoadArena(fsys fs.FS, path string) (components.ArenaData, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return components.ArenaData{}, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := components.ArenaData{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	arena.SpawnMax = dmath.Vec2{X: arena.Width, Y: arena.Height}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		switch og.Name {
		case "PlayerSpawn":
			arena.PlayerSpawn = dmath.Vec2{X: o.X, Y: o.Y}
			foundPlayer = true
		case "EnemySpawn":
			arena.SpawnMin = dmath.Vec2{X: o.X, Y: o.Y}
			arena.SpawnMax = dmath.Vec2{X: o.X + o.Width, Y: o.Y + o.Height}
		}
	}

	if !foundPlayer {
		return components.ArenaData{}, fmt.Errorf("load arena %s: %w", path, ErrNoPlayerSpawn)
	}
	for _, p := range []dmath.Vec2{arena.PlayerSpawn, arena.SpawnMin, arena.SpawnMax} {
		if !arena.Contains(p, 0) {
			return components.ArenaData{}, fmt.Errorf("load arena %s: %w: (%.0f, %.0f)", path, ErrOutOfBounds, p.X, p.Y)
		}
	}

	return arena, nil
}

// MustLoadArena loads an arena from the embedded levels and panics on failure.
func MustLoadArena(path string) components.ArenaData {
	arena, err := LoadArena(assetFS, path)
	if err != nil {
		panic(err)
	}
	return arena
}
