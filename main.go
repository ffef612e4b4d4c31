package main

import (
	"flag"
	"image"
	"log"
	"time"

	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/fonts"
	"github.com/automoto/circleclash/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Finished() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(arena string, seed int64) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(arena, seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	arena := flag.String("arena", cfg.Arena.MapPath, "embedded arena map")
	seed := flag.Int64("seed", time.Now().UnixNano(), "wave spawn seed")
	flag.Parse()

	ebiten.SetWindowSize(cfg.C.Width/2, cfg.C.Height/2)
	ebiten.SetWindowTitle("Circle Clash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame(*arena, *seed)); err != nil {
		log.Fatal(err)
	}
}
