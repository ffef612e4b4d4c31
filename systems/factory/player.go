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

// CreatePlayer spawns the player at pos with an empty inventory. Weapons are
// granted by the unlock check on the first update.
func CreatePlayer(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Character.SetValue(player, components.NewCharacterData(
		cfg.ArchetypePlayer, cfg.SidePlayer, pos, cfg.Player.Speed,
	))
	components.Player.SetValue(player, components.PlayerData{})

	attachObject(ecs, player, pos.X, pos.Y, cfg.Combat.CharacterSize, "character", tags.ResolvPlayer)

	return player
}
