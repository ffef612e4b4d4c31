package config

import "github.com/hajimehoshi/ebiten/v2"

// InputBinding represents the keys and mouse buttons bound to one action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	MoveUp    []ebiten.Key
	MoveDown  []ebiten.Key
	MoveLeft  []ebiten.Key
	MoveRight []ebiten.Key

	// Keyboard alternative to the mouse wheel
	NextWeapon []ebiten.Key
	PrevWeapon []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			// Attack repeats while held, the weapon's fire rate limits it
			ActionAttack: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionTogglePause: {
				Keys: []ebiten.Key{ebiten.KeyP},
			},
			ActionStart: {
				Keys:         []ebiten.Key{ebiten.KeyEnter},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
			ActionSkipWave: {
				Keys: []ebiten.Key{ebiten.KeyI},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
		MoveUp:     []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
		MoveDown:   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
		MoveLeft:   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		MoveRight:  []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		NextWeapon: []ebiten.Key{ebiten.KeyE},
		PrevWeapon: []ebiten.Key{ebiten.KeyQ},
	}
}
