package components

import (
	"github.com/yohamta/donburi"
)

// ScheduledAction is a deferred operation on an entity.
type ScheduledAction int

const (
	ActionDespawn ScheduledAction = iota
)

type ScheduledTask struct {
	FireTick uint64
	Action   ScheduledAction
	Entity   donburi.Entity
}

// ScheduleData is the pending task queue, sorted by FireTick.
// This is a singleton component.
type ScheduleData struct {
	Tasks []ScheduledTask
}

var Schedule = donburi.NewComponentType[ScheduleData]()
