package factory

import (
	"github.com/automoto/circleclash/archetypes"
	"github.com/automoto/circleclash/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives e a square collision proxy of the given size centred on
// (x, y) and registers it with the collision space.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, x, y, size float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
