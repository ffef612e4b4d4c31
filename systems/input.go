package systems

import (
	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi/ecs"
)

func getInput(ecs *ecs.ECS) *components.InputData {
	ent, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(ent)
}

// UpdateInput polls the input source and applies its commands. It runs in
// every game state so that pause, start and restart keep working.
func UpdateInput(ecs *ecs.ECS) {
	in := getInput(ecs)
	if in == nil || in.Source == nil {
		return
	}

	in.Movement = in.Source.Movement()
	in.Pointer = in.Source.Pointer()
	in.Commands = in.Source.Commands()

	for _, cmd := range in.Commands {
		applyCommand(ecs, cmd)
	}
}

func applyCommand(ecs *ecs.ECS, cmd cfg.Command) {
	switch cmd.Action {
	case cfg.ActionAttack:
		if player, ok := PlayerEntry(ecs); ok {
			Attack(ecs, player)
		}
	case cfg.ActionCycleWeapon:
		if player, ok := PlayerEntry(ecs); ok {
			CycleWeapon(player, cmd.Delta)
		}
	case cfg.ActionTogglePause:
		TogglePause(ecs)
	case cfg.ActionStart:
		StartGame(ecs)
	case cfg.ActionRestart:
		RestartGame(ecs)
	case cfg.ActionSkipWave:
		SkipWave(ecs)
	case cfg.ActionQuit:
		QuitGame(ecs)
	}
}
