package systems_test

import (
	"testing"

	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/systems"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestWithRunningCheck(t *testing.T) {
	tests := []struct {
		state cfg.GameStateID
		runs  bool
	}{
		{cfg.GameReady, false},
		{cfg.GamePaused, false},
		{cfg.GameRunning, true},
		{cfg.GameWin, false},
		{cfg.GameOver, false},
		{cfg.GameQuit, false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			e := newTestWorld(t)
			setState(e, tt.state)

			ran := false
			systems.WithRunningCheck(func(*ecs.ECS) { ran = true })(e)
			assert.Equal(t, tt.runs, ran)
		})
	}
}

func TestWithRunningCheckWithoutSession(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	ran := false
	systems.WithRunningCheck(func(*ecs.ECS) { ran = true })(e)
	assert.True(t, ran)
}
