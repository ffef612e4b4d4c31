package assets

import (
	"errors"
	"image/color"

	cfg "github.com/automoto/circleclash/config"
)

var ErrNoDefaultLook = errors.New("look set has no default")

// Look describes how a character is drawn in one state.
type Look struct {
	// Color replaces the archetype tint when its alpha is non-zero
	Color color.RGBA
	Ring  bool
}

// Looks maps character states to looks. States without an entry use the
// DEFAULT look.
type Looks struct {
	byState map[cfg.CharacterState]Look
}

func NewLooks(byState map[cfg.CharacterState]Look) (*Looks, error) {
	if _, ok := byState[cfg.Default]; !ok {
		return nil, ErrNoDefaultLook
	}
	m := make(map[cfg.CharacterState]Look, len(byState))
	for state, l := range byState {
		m[state] = l
	}
	return &Looks{byState: m}, nil
}

func (l *Looks) For(state cfg.CharacterState) Look {
	if look, ok := l.byState[state]; ok {
		return look
	}
	return l.byState[cfg.Default]
}

// Fill returns the body color of a character with the given tint.
func (look Look) Fill(tint color.RGBA) color.RGBA {
	if look.Color.A != 0 {
		return look.Color
	}
	return tint
}

// DefaultLooks is the look set used by the arena scene.
func DefaultLooks() *Looks {
	looks, err := NewLooks(map[cfg.CharacterState]Look{
		cfg.Default:  {},
		cfg.Hit:      {Color: cfg.Colors.Hit},
		cfg.Critical: {Ring: true},
		cfg.Killed:   {Color: cfg.Colors.Killed},
	})
	if err != nil {
		panic(err)
	}
	return looks
}
