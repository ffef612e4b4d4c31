package components

import (
	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . InputSource

// InputSource is polled once per tick. Movement is the raw direction vector,
// Pointer is the aim position in arena coordinates.
type InputSource interface {
	Movement() dmath.Vec2
	Pointer() dmath.Vec2
	Commands() []cfg.Command
}

// InputData stores what the source produced for the current tick.
type InputData struct {
	Source   InputSource
	Movement dmath.Vec2
	Pointer  dmath.Vec2
	Commands []cfg.Command
}

var Input = donburi.NewComponentType[InputData]()
