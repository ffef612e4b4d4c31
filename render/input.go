package render

import (
	cfg "github.com/automoto/circleclash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	dmath "github.com/yohamta/donburi/features/math"
)

// Input reads the keyboard and mouse through ebiten.
type Input struct {
	commands []cfg.Command
}

func NewInput() *Input {
	return &Input{}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (i *Input) Movement() dmath.Vec2 {
	var v dmath.Vec2
	if anyPressed(cfg.Input.MoveLeft) {
		v.X--
	}
	if anyPressed(cfg.Input.MoveRight) {
		v.X++
	}
	if anyPressed(cfg.Input.MoveUp) {
		v.Y--
	}
	if anyPressed(cfg.Input.MoveDown) {
		v.Y++
	}
	return v
}

func (i *Input) Pointer() dmath.Vec2 {
	x, y := ebiten.CursorPosition()
	return dmath.Vec2{X: float64(x), Y: float64(y)}
}

func (i *Input) Commands() []cfg.Command {
	i.commands = i.commands[:0]

	// bindings are checked in action order so that commands are stable
	for action := cfg.ActionAttack; action <= cfg.ActionQuit; action++ {
		b, ok := cfg.Input.Bindings[action]
		if ok && i.triggered(action, b) {
			i.commands = append(i.commands, cfg.Command{Action: action})
		}
	}

	_, wheel := ebiten.Wheel()
	switch {
	case wheel > 0 || anyJustPressed(cfg.Input.NextWeapon):
		i.commands = append(i.commands, cfg.Command{Action: cfg.ActionCycleWeapon, Delta: 1})
	case wheel < 0 || anyJustPressed(cfg.Input.PrevWeapon):
		i.commands = append(i.commands, cfg.Command{Action: cfg.ActionCycleWeapon, Delta: -1})
	}

	return i.commands
}

func (i *Input) triggered(action cfg.ActionID, b cfg.InputBinding) bool {
	if action == cfg.ActionAttack {
		for _, btn := range b.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				return true
			}
		}
		return anyPressed(b.Keys)
	}

	for _, btn := range b.MouseButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			return true
		}
	}
	return anyJustPressed(b.Keys)
}
