package render

import (
	"image/color"

	"github.com/automoto/circleclash/components"
	"github.com/automoto/circleclash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DebugToggleKey shows or hides collision boxes.
const DebugToggleKey = ebiten.KeyF3

var showHitboxes bool

// DrawDebug outlines every object in the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if inpututil.IsKeyJustPressed(DebugToggleKey) {
		showHitboxes = !showHitboxes
	}
	if !showHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvEnemyShot):
			c = color.RGBA{255, 128, 0, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
