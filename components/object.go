package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision proxy of a character or projectile. The
// object is a bounding box centred on the entity position.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space.
var Space = donburi.NewComponentType[resolv.Space]()

// Centre moves the proxy so that its centre sits at (x, y).
func (o *ObjectData) Centre(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}
