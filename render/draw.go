// Package render draws the arena with ebiten and reads player input.
// Nothing in here changes simulation state.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/circleclash/assets"
	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/fonts"
	"github.com/automoto/circleclash/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridStep    = 64
	ringWidth   = 4
	headingLen  = 1.4
	hudMargin   = 12
	hudLineStep = 22
)

var gridColor = color.RGBA{R: 40, G: 43, B: 52, A: 255}

// scaleAlpha fades a color by alpha in [0, 1].
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DrawArena fills the background and draws a floor grid.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	arena := systems.GetArena(ecs)
	if arena == nil {
		return
	}
	w, h := float32(arena.Width), float32(arena.Height)
	for x := float32(0); x <= w; x += gridStep {
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	for y := float32(0); y <= h; y += gridStep {
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor, false)
	}
}

// DrawProjectiles draws every live projectile as a circle of its hit radius.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		c := cfg.Colors.Projectile
		if p.Side == cfg.SideEnemy {
			c = cfg.Colors.Critical
		}
		// later animation frames fade out
		alpha := 1 - 0.5*float64(p.Frame)/float64(max(p.Frames, 1))
		vector.StrokeCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), 2, scaleAlpha(c, alpha), true)
	})
}

// NewCharacterRenderer returns a renderer that draws every character with
// the look of its current state.
func NewCharacterRenderer(looks *assets.Looks) ecs.Renderer {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		radius := float32(cfg.Combat.CharacterSize / 2)

		components.Character.Each(ecs.World, func(e *donburi.Entry) {
			ch := components.Character.Get(e)
			look := looks.For(ch.State)

			alpha := 1.0
			if e.HasComponent(components.Fade) {
				alpha = components.Fade.Get(e).Alpha
			}

			x, y := float32(ch.Position.X), float32(ch.Position.Y)
			tint := cfg.Archetypes[ch.Archetype].Tint
			vector.FillCircle(screen, x, y, radius, scaleAlpha(look.Fill(tint), alpha), true)
			if look.Ring {
				vector.StrokeCircle(screen, x, y, radius, ringWidth, cfg.Colors.Critical, true)
			}

			if ch.IsAlive() && ch.Weapon() != nil {
				rad := ch.Rotation * math.Pi / 180
				tx := x + float32(math.Cos(rad))*radius*headingLen
				ty := y + float32(math.Sin(rad))*radius*headingLen
				vector.StrokeLine(screen, x, y, tx, ty, 3, cfg.Colors.HUD, true)
			}
		})
	}
}

// DrawHUD prints score, wave, health, weapon and state in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	g := systems.GetGame(ecs)
	if g == nil {
		return
	}
	face := fonts.Regular.Get()

	lines := []string{
		fmt.Sprintf("SCORE %d", g.Score),
		fmt.Sprintf("WAVE %d", systems.ActiveWaveIndex(ecs)+1),
	}
	if player, ok := systems.PlayerEntry(ecs); ok {
		ch := components.Character.Get(player)
		weapon := "-"
		if w := ch.Weapon(); w != nil {
			weapon = w.Kind.String()
		}
		lines = append(lines,
			fmt.Sprintf("HEALTH %.0f / %.0f", ch.Health, ch.InitialHealth),
			fmt.Sprintf("WEAPON %s", weapon),
			fmt.Sprintf("STATE %s", ch.State),
		)
	}

	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineStep*(i+1), cfg.Colors.HUD)
	}
}

// DrawOverlay dims the arena and prints a banner while the game is not
// being played.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	var title, hint string
	switch systems.GameState(ecs) {
	case cfg.GameReady:
		title, hint = "CIRCLE CLASH", "click or press enter to start"
	case cfg.GamePaused:
		title, hint = "PAUSED", "press p to resume"
	case cfg.GameWin:
		title, hint = "YOU WIN", "press space to play again"
	case cfg.GameOver:
		title, hint = "GAME OVER", "press space to try again"
	default:
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Colors.Overlay, false)

	titleFont := fonts.Title.Get()
	bounds := text.BoundString(titleFont, title)
	text.Draw(screen, title, titleFont, (width-bounds.Dx())/2, height/2, cfg.Colors.HUD)

	hintFont := fonts.Bold.Get()
	bounds = text.BoundString(hintFont, hint)
	text.Draw(screen, hint, hintFont, (width-bounds.Dx())/2, height/2+48, cfg.Colors.HUD)
}
