package scenes

import (
	"sync"

	"github.com/automoto/circleclash/assets"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/game"
	"github.com/automoto/circleclash/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaScene runs one game session with ebiten input and rendering.
type ArenaScene struct {
	game  *game.Game
	arena string
	seed  int64
	once  sync.Once
}

// NewArenaScene creates a scene for the arena map at path. The map is
// loaded on the first update.
func NewArenaScene(path string, seed int64) *ArenaScene {
	return &ArenaScene{arena: path, seed: seed}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.game.Update()
}

// Finished reports whether the player quit.
func (as *ArenaScene) Finished() bool {
	return as.game != nil && as.game.Finished()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	if as.game == nil {
		return
	}
	as.game.ECS.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.game = game.New(game.Options{
		Arena: assets.MustLoadArena(as.arena),
		Input: render.NewInput(),
		Seed:  as.seed,
	})

	ecs := as.game.ECS
	ecs.AddRenderer(cfg.LayerDefault, render.DrawArena)
	ecs.AddRenderer(cfg.LayerDefault, render.DrawProjectiles)
	ecs.AddRenderer(cfg.LayerDefault, render.NewCharacterRenderer(assets.DefaultLooks()))
	ecs.AddRenderer(cfg.LayerDefault, render.DrawHUD)
	ecs.AddRenderer(cfg.LayerDefault, render.DrawDebug)
	ecs.AddRenderer(cfg.LayerDefault, render.DrawOverlay)
}
