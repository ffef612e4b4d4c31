package components

import (
	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
)

// WeaponData is carried in a character's inventory. It is not an entity
// of its own; its live projectiles are.
type WeaponData struct {
	Kind       cfg.WeaponKind
	Damage     float64
	HitRadius  float64
	FireRate   int
	Spread     int
	Projectile cfg.ProjectileKind

	// Owner is the wielding character entry
	Owner *donburi.Entry
	Live  []*donburi.Entry
}

// NewWeaponData copies the template of kind into a fresh weapon for owner.
func NewWeaponData(kind cfg.WeaponKind, owner *donburi.Entry) *WeaponData {
	w := cfg.Weapons[kind]
	return &WeaponData{
		Kind:       kind,
		Damage:     w.Damage,
		HitRadius:  w.HitRadius,
		FireRate:   w.FireRate,
		Spread:     w.Spread,
		Projectile: w.Projectile,
		Owner:      owner,
	}
}

// Release drops e from the live set. It reports whether e was present.
func (w *WeaponData) Release(e *donburi.Entry) bool {
	for i, p := range w.Live {
		if p == e {
			w.Live = append(w.Live[:i], w.Live[i+1:]...)
			return true
		}
	}
	return false
}
