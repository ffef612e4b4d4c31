// Package events holds the notifications published during a tick. They are
// queued and delivered when the next tick starts.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

type EnemyKilled struct {
	Entity donburi.Entity
	Points int
}

type PlayerKilled struct {
	Entity donburi.Entity
}

type WaveSpawned struct {
	Index   int
	Enemies int
}

type WinReached struct {
	Waves int
}

var (
	EnemyKilledEvent  = devents.NewEventType[EnemyKilled]()
	PlayerKilledEvent = devents.NewEventType[PlayerKilled]()
	WaveSpawnedEvent  = devents.NewEventType[WaveSpawned]()
	WinReachedEvent   = devents.NewEventType[WinReached]()
)

// Dispatch delivers every queued event to its subscribers.
func Dispatch(w donburi.World) {
	devents.ProcessAllEvents(w)
}
