package systems_test

import (
	"testing"

	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/events"
	"github.com/automoto/circleclash/systems"
	"github.com/automoto/circleclash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestEnemyPursuesTarget(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	lockUnlocks(p)
	enemy := factory.CreateEnemy(e, cfg.ArchetypeGrunt, vec(500, 200), 2, p, cfg.WeaponWoodenSword)

	systems.UpdateEnemies(e)

	assert.InDelta(t, 498, character(enemy).Position.X, 1e-9)
	assert.InDelta(t, 200, character(enemy).Position.Y, 1e-9)
	assert.InDelta(t, 180, character(enemy).Rotation, 1e-9)
	assert.Empty(t, projectiles(e))
}

func TestEnemyAttacksInsideHitRadius(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	lockUnlocks(p)
	enemy := factory.CreateEnemy(e, cfg.ArchetypeGrunt, vec(220, 200), 2, p, cfg.WeaponWoodenSword)
	character(enemy).SinceAttack = 10

	systems.UpdateEnemies(e)

	assert.Equal(t, vec(220, 200), character(enemy).Position)
	shots := projectiles(e)
	require.Len(t, shots, 1)
	assert.Equal(t, cfg.SideEnemy, shots[0].Side)
	assert.InDelta(t, 180, shots[0].Heading, 1e-9)
}

func TestEnemyWithoutWeaponKeepsClosingIn(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	enemy := factory.CreateEnemy(e, cfg.ArchetypeGrunt, vec(200, 201), 2, p, cfg.WeaponNone)

	systems.UpdateEnemies(e)
	assert.InDelta(t, 199, character(enemy).Position.Y, 1e-9)
}

func TestEnemyStopsWhenTargetIsDead(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	enemy := factory.CreateEnemy(e, cfg.ArchetypeGrunt, vec(500, 200), 2, p, cfg.WeaponWoodenSword)
	systems.Damage(e, p, 5000)

	systems.UpdateEnemies(e)
	assert.Equal(t, vec(500, 200), character(enemy).Position)
}

func TestEnemyKillAwardsPointsAndDespawns(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	enemy := factory.CreateEnemy(e, cfg.ArchetypeGrunt, vec(800, 800), 2, p, cfg.WeaponBow)
	character(enemy).SinceAttack = 100
	require.True(t, systems.Attack(e, enemy))

	var killed []events.EnemyKilled
	events.EnemyKilledEvent.Subscribe(e.World, func(w donburi.World, ev events.EnemyKilled) {
		killed = append(killed, ev)
	})

	systems.Damage(e, enemy, 1000)
	systems.Damage(e, enemy, 1000)
	assert.Equal(t, cfg.Killed, character(enemy).State)
	assert.True(t, enemy.HasComponent(components.Fade))

	tick(e, 1)
	require.Len(t, killed, 1)
	assert.Equal(t, 150, killed[0].Points)
	assert.Equal(t, 150, systems.GetGame(e).Score)

	tick(e, cfg.Combat.DespawnDelayTicks-2)
	assert.True(t, enemy.Valid())

	tick(e, 1)
	assert.False(t, enemy.Valid())
	assert.Empty(t, projectiles(e))
	assert.Equal(t, 150, systems.GetGame(e).Score)
}

func TestKilledEnemyFades(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	enemy := factory.CreateEnemy(e, cfg.ArchetypeBrute, vec(800, 800), 2, p, cfg.WeaponPrimeSword)
	systems.Damage(e, enemy, 1000)

	for range cfg.Combat.DespawnDelayTicks / 2 {
		systems.UpdateFades(e)
	}
	mid := components.Fade.Get(enemy).Alpha
	assert.Less(t, mid, 1.0)
	assert.Greater(t, mid, cfg.Combat.FadeAlpha)

	for range cfg.Combat.DespawnDelayTicks {
		systems.UpdateFades(e)
	}
	assert.InDelta(t, cfg.Combat.FadeAlpha, components.Fade.Get(enemy).Alpha, 1e-3)
}

func TestBossUpgradesOnce(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	lockUnlocks(p)
	boss := factory.CreateEnemy(e, cfg.ArchetypeWarlord, vec(800, 800), 1.2, p, cfg.WeaponDoubleAxe)

	systems.Damage(e, boss, 400)
	systems.UpdateEnemies(e)
	require.Len(t, character(boss).Weapons, 1)
	assert.Equal(t, cfg.WeaponDoubleAxe, character(boss).Weapon().Kind)

	systems.Damage(e, boss, 101)
	systems.UpdateEnemies(e)
	require.Len(t, character(boss).Weapons, 2)
	assert.Equal(t, cfg.WeaponBow, character(boss).Weapon().Kind)

	systems.SetActiveWeapon(boss, 0)
	systems.Damage(e, boss, 100)
	systems.UpdateEnemies(e)
	assert.Len(t, character(boss).Weapons, 2)
	assert.Equal(t, cfg.WeaponDoubleAxe, character(boss).Weapon().Kind)
}

func TestBossReselectsCarriedBow(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	boss := factory.CreateEnemy(e, cfg.ArchetypeWarlord, vec(800, 800), 1.2, p, cfg.WeaponDoubleAxe)
	systems.AddWeapon(boss, cfg.WeaponBow)

	systems.Damage(e, boss, 600)
	systems.UpdateEnemies(e)

	assert.Len(t, character(boss).Weapons, 2)
	assert.Equal(t, 1, character(boss).ActiveWeapon)
}

func TestBossDoesNotUpgradeWhileFrozen(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	boss := factory.CreateEnemy(e, cfg.ArchetypeWarlord, vec(800, 800), 1.2, p, cfg.WeaponDoubleAxe)
	systems.Damage(e, boss, 600)

	setState(e, cfg.GamePaused)
	systems.UpdateEnemies(e)
	assert.Len(t, character(boss).Weapons, 1)

	setState(e, cfg.GameRunning)
	systems.UpdateEnemies(e)
	assert.Len(t, character(boss).Weapons, 2)
}

func TestRegularEnemiesNeverUpgrade(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, vec(200, 200))
	enemy := factory.CreateEnemy(e, cfg.ArchetypeTank, vec(800, 800), 1, p, cfg.WeaponAxe)
	systems.Damage(e, enemy, 100)

	systems.UpdateEnemies(e)
	assert.Len(t, character(enemy).Weapons, 1)
}
