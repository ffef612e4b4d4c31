package components

import (
	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CharacterData is shared by the player and every enemy.
type CharacterData struct {
	Archetype cfg.ArchetypeID
	Side      cfg.Side

	Position math.Vec2
	Speed    float64
	// Rotation in degrees, always in [0, 360)
	Rotation float64

	Health         float64
	InitialHealth  float64
	CriticalHealth float64
	State          cfg.CharacterState
	// HitTimer counts ticks spent in the HIT state
	HitTimer int

	Weapons      []*WeaponData
	ActiveWeapon int
	// SinceAttack counts ticks since the last successful attack
	SinceAttack int

	// Upgraded latches the one-time weapon upgrade of boss archetypes
	Upgraded bool
}

var Character = donburi.NewComponentType[CharacterData]()

// NewCharacterData builds a character at pos from its archetype template.
func NewCharacterData(id cfg.ArchetypeID, side cfg.Side, pos math.Vec2, speed float64) CharacterData {
	a := cfg.Archetypes[id]
	return CharacterData{
		Archetype:      id,
		Side:           side,
		Position:       pos,
		Speed:          speed,
		Health:         a.Health,
		InitialHealth:  a.Health,
		CriticalHealth: a.Health * cfg.Combat.CriticalFraction,
		State:          cfg.Default,
		ActiveWeapon:   -1,
	}
}

// IsAlive reports whether the character still has health left.
func (c *CharacterData) IsAlive() bool {
	return c.State != cfg.Killed && c.Health > 0
}

// CanAct reports whether the character may move, aim, attack or switch weapons.
func (c *CharacterData) CanAct() bool {
	return c.State != cfg.Killed && c.State != cfg.Immovable
}

// Weapon returns the active weapon, or nil when the inventory is empty.
func (c *CharacterData) Weapon() *WeaponData {
	if c.ActiveWeapon < 0 || c.ActiveWeapon >= len(c.Weapons) {
		return nil
	}
	return c.Weapons[c.ActiveWeapon]
}

// HasWeapon reports whether a weapon of kind k is carried and returns its index.
func (c *CharacterData) HasWeapon(k cfg.WeaponKind) (int, bool) {
	for i, w := range c.Weapons {
		if w.Kind == k {
			return i, true
		}
	}
	return -1, false
}

// HealthState derives the state for a proposed health value.
func (c *CharacterData) HealthState(proposed float64) cfg.CharacterState {
	switch {
	case proposed <= 0:
		return cfg.Killed
	case proposed <= c.CriticalHealth:
		return cfg.Critical
	case proposed < c.Health:
		return cfg.Hit
	}
	return cfg.Default
}

// RestingState is the state a character returns to when nothing happens:
// CRITICAL at low health, DEFAULT otherwise.
func (c *CharacterData) RestingState() cfg.CharacterState {
	if c.Health <= 0 {
		return cfg.Killed
	}
	if c.Health <= c.CriticalHealth {
		return cfg.Critical
	}
	return cfg.Default
}
