package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Unlocked is how many entries of the unlock list have been granted
	Unlocked int
}

var Player = donburi.NewComponentType[PlayerData]()
