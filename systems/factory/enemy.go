package factory

import (
	"github.com/automoto/circleclash/archetypes"
	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/automoto/circleclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of the given archetype chasing target. A weapon
// kind other than WeaponNone is equipped and selected.
func CreateEnemy(ecs *ecs.ECS, id cfg.ArchetypeID, pos dmath.Vec2, speed float64, target *donburi.Entry, weapon cfg.WeaponKind) *donburi.Entry {
	enemyType, exists := cfg.Archetypes[id]
	if !exists || id == cfg.ArchetypePlayer {
		id = cfg.ArchetypeGrunt
		enemyType = cfg.Archetypes[id]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	ch := components.NewCharacterData(id, cfg.SideEnemy, pos, speed)
	if weapon != cfg.WeaponNone {
		ch.Weapons = append(ch.Weapons, components.NewWeaponData(weapon, enemy))
		ch.ActiveWeapon = 0
	}
	components.Character.SetValue(enemy, ch)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Target: target,
		Points: enemyType.Points,
	})

	attachObject(ecs, enemy, pos.X, pos.Y, cfg.Combat.CharacterSize, "character", tags.ResolvEnemy)

	return enemy
}
