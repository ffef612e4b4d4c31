package systems

import (
	"sort"

	"github.com/automoto/circleclash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getSchedule(ecs *ecs.ECS) *components.ScheduleData {
	ent, ok := components.Schedule.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Schedule.Get(ent)
}

func currentTick(ecs *ecs.ECS) uint64 {
	if g := GetGame(ecs); g != nil {
		return g.Tick
	}
	return 0
}

// ScheduleDespawn queues the removal of entity delay ticks from now.
func ScheduleDespawn(ecs *ecs.ECS, entity donburi.Entity, delay int) {
	sched := getSchedule(ecs)
	if sched == nil {
		return
	}
	task := components.ScheduledTask{
		FireTick: currentTick(ecs) + uint64(max(delay, 0)),
		Action:   components.ActionDespawn,
		Entity:   entity,
	}
	// keep the queue ordered by fire tick, FIFO among equal ticks
	i := sort.Search(len(sched.Tasks), func(i int) bool {
		return sched.Tasks[i].FireTick > task.FireTick
	})
	sched.Tasks = append(sched.Tasks, components.ScheduledTask{})
	copy(sched.Tasks[i+1:], sched.Tasks[i:])
	sched.Tasks[i] = task
}

// UpdateSchedule runs every task whose fire tick has been reached. Tasks for
// entities that no longer exist are dropped.
func UpdateSchedule(ecs *ecs.ECS) {
	sched := getSchedule(ecs)
	if sched == nil {
		return
	}
	now := currentTick(ecs)

	n := 0
	for n < len(sched.Tasks) && sched.Tasks[n].FireTick <= now {
		n++
	}
	due := append([]components.ScheduledTask(nil), sched.Tasks[:n]...)
	sched.Tasks = sched.Tasks[n:]

	for _, task := range due {
		if !ecs.World.Valid(task.Entity) {
			continue
		}
		switch task.Action {
		case components.ActionDespawn:
			DespawnEnemy(ecs, ecs.World.Entry(task.Entity))
		}
	}
}

// DespawnEnemy removes an enemy, its projectiles and its collision proxy.
func DespawnEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Character) {
		return
	}
	ch := components.Character.Get(e)
	for _, w := range ch.Weapons {
		releaseProjectiles(ecs, w)
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
