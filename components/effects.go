package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData tracks the opacity of a killed character until it is despawned.
type FadeData struct {
	Tween *gween.Tween
	Alpha float64
}

var Fade = donburi.NewComponentType[FadeData]()
