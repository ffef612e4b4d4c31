package components

import (
	cfg "github.com/automoto/circleclash/config"
	"github.com/yohamta/donburi"
)

// WaveData is one group of enemies released together.
type WaveData struct {
	Groups  []cfg.WaveGroup
	Target  *donburi.Entry
	Enemies []donburi.Entity
	Spawned bool
}

// WaveManagerData owns the ordered waves of a session.
// This is a singleton component.
type WaveManagerData struct {
	Waves []*WaveData
	// Active is -1 until the first wave is spawned
	Active int
	// WinSignaled latches the win notification until reset
	WinSignaled bool
}

var WaveManager = donburi.NewComponentType[WaveManagerData]()

// Current returns the active wave, or nil before the first spawn.
func (m *WaveManagerData) Current() *WaveData {
	if m.Active < 0 || m.Active >= len(m.Waves) {
		return nil
	}
	return m.Waves[m.Active]
}

// IsLast reports whether the active wave is the final one.
func (m *WaveManagerData) IsLast() bool {
	return m.Active == len(m.Waves)-1
}
