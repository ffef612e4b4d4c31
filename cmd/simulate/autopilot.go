package main

import (
	"math"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/game"
	"github.com/automoto/circleclash/systems"
	dmath "github.com/yohamta/donburi/features/math"
)

// keepDistance is how close the autopilot walks up to its target.
const keepDistance = 40

// Autopilot plays the game: it walks toward the nearest living enemy, aims
// at it, attacks every tick and switches to the newest unlocked weapon.
type Autopilot struct {
	game    *game.Game
	restart bool
}

func NewAutopilot(restart bool) *Autopilot {
	return &Autopilot{restart: restart}
}

// Attach binds the autopilot to the session it plays.
func (a *Autopilot) Attach(g *game.Game) {
	a.game = g
}

func (a *Autopilot) player() *components.CharacterData {
	if a.game == nil {
		return nil
	}
	return a.game.PlayerCharacter()
}

// nearestEnemy returns the position of the closest living enemy of the
// active wave.
func (a *Autopilot) nearestEnemy() (dmath.Vec2, bool) {
	p := a.player()
	if p == nil {
		return dmath.Vec2{}, false
	}

	m := systems.GetWaveManager(a.game.ECS)
	if m == nil || m.Current() == nil {
		return dmath.Vec2{}, false
	}

	best := math.Inf(1)
	var pos dmath.Vec2
	for _, e := range systems.AliveEnemies(a.game.ECS, m.Current()) {
		ch := components.Character.Get(e)
		d := math.Hypot(ch.Position.X-p.Position.X, ch.Position.Y-p.Position.Y)
		if d < best {
			best = d
			pos = ch.Position
		}
	}
	return pos, !math.IsInf(best, 1)
}

func (a *Autopilot) Movement() dmath.Vec2 {
	p := a.player()
	target, ok := a.nearestEnemy()
	if p == nil || !ok {
		return dmath.Vec2{}
	}
	dx, dy := target.X-p.Position.X, target.Y-p.Position.Y
	if math.Hypot(dx, dy) <= keepDistance {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: dx, Y: dy}
}

func (a *Autopilot) Pointer() dmath.Vec2 {
	if target, ok := a.nearestEnemy(); ok {
		return target
	}
	if p := a.player(); p != nil {
		return p.Position
	}
	return dmath.Vec2{}
}

func (a *Autopilot) Commands() []cfg.Command {
	if a.game == nil {
		return nil
	}

	switch a.game.State() {
	case cfg.GameReady:
		return []cfg.Command{{Action: cfg.ActionStart}}
	case cfg.GameOver, cfg.GameWin:
		if a.restart {
			return []cfg.Command{{Action: cfg.ActionRestart}}
		}
		return nil
	case cfg.GameRunning:
	default:
		return nil
	}

	var cmds []cfg.Command
	if p := a.player(); p != nil && len(p.Weapons) > 0 && p.ActiveWeapon != len(p.Weapons)-1 {
		cmds = append(cmds, cfg.Command{Action: cfg.ActionCycleWeapon, Delta: len(p.Weapons) - 1 - p.ActiveWeapon})
	}
	if _, ok := a.nearestEnemy(); ok {
		cmds = append(cmds, cfg.Command{Action: cfg.ActionAttack})
	}
	return cmds
}
