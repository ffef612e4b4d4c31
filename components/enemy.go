package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	// Target is the pursued character, usually the player
	Target *donburi.Entry
	Points int
	// Despawning is set once the removal has been scheduled
	Despawning bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
