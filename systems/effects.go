package systems

import (
	"github.com/automoto/circleclash/components"
	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFades advances the fade tween of killed characters.
func UpdateFades(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Tween == nil {
			return
		}
		alpha, finished := fade.Tween.Update(dt)
		fade.Alpha = float64(alpha)
		if finished {
			fade.Tween = nil
		}
	})
}
