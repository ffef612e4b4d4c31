package components_test

import (
	"testing"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestHealthState(t *testing.T) {
	ch := components.NewCharacterData(cfg.ArchetypePlayer, cfg.SidePlayer, dmath.Vec2{}, 3)
	ch.Health = 800

	tests := []struct {
		name     string
		proposed float64
		want     cfg.CharacterState
	}{
		{name: "dead", proposed: 0, want: cfg.Killed},
		{name: "below zero", proposed: -5, want: cfg.Killed},
		{name: "critical threshold", proposed: 200, want: cfg.Critical},
		{name: "critical", proposed: 1, want: cfg.Critical},
		{name: "lost health", proposed: 799, want: cfg.Hit},
		{name: "unchanged", proposed: 800, want: cfg.Default},
		{name: "healed", proposed: 900, want: cfg.Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ch.HealthState(tt.proposed))
		})
	}
}

func TestNewCharacterData(t *testing.T) {
	ch := components.NewCharacterData(cfg.ArchetypeWarlord, cfg.SideEnemy, dmath.Vec2{X: 1, Y: 2}, 1.2)

	assert.Equal(t, 1000.0, ch.Health)
	assert.Equal(t, 1000.0, ch.InitialHealth)
	assert.Equal(t, 200.0, ch.CriticalHealth)
	assert.Equal(t, cfg.Default, ch.State)
	assert.Equal(t, -1, ch.ActiveWeapon)
	assert.Nil(t, ch.Weapon())
	assert.True(t, ch.IsAlive())
	assert.True(t, ch.CanAct())
}

func TestRestingState(t *testing.T) {
	ch := components.NewCharacterData(cfg.ArchetypeGrunt, cfg.SideEnemy, dmath.Vec2{}, 2)

	ch.Health = 10
	assert.Equal(t, cfg.Critical, ch.RestingState())
	ch.Health = 40
	assert.Equal(t, cfg.Default, ch.RestingState())
	ch.Health = 0
	assert.Equal(t, cfg.Killed, ch.RestingState())
}

func TestHasWeapon(t *testing.T) {
	ch := components.NewCharacterData(cfg.ArchetypeWarlord, cfg.SideEnemy, dmath.Vec2{}, 1.2)
	ch.Weapons = append(ch.Weapons,
		components.NewWeaponData(cfg.WeaponDoubleAxe, nil),
		components.NewWeaponData(cfg.WeaponBow, nil),
	)

	i, ok := ch.HasWeapon(cfg.WeaponBow)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = ch.HasWeapon(cfg.WeaponWand)
	assert.False(t, ok)
}

func TestGameDataRunning(t *testing.T) {
	g := components.GameData{State: cfg.GameRunning}
	assert.True(t, g.Running())

	g.State = cfg.GamePaused
	assert.False(t, g.Running())
}
