package config

// CharacterState is the health-derived (or game-imposed) state of a character.
type CharacterState int

const (
	Default CharacterState = iota
	Hit
	Critical
	Killed
	Immovable
)

func (s CharacterState) String() string {
	switch s {
	case Default:
		return "DEFAULT"
	case Hit:
		return "HIT"
	case Critical:
		return "CRITICAL"
	case Killed:
		return "KILLED"
	case Immovable:
		return "IMMOVABLE"
	}
	return "UNKNOWN"
}

// GameStateID is the session state driven by the game controller.
type GameStateID int

const (
	GameReady GameStateID = iota
	GamePaused
	GameRunning
	GameWin
	GameOver
	GameQuit
)

func (s GameStateID) String() string {
	switch s {
	case GameReady:
		return "READY"
	case GamePaused:
		return "PAUSED"
	case GameRunning:
		return "RUNNING"
	case GameWin:
		return "WIN"
	case GameOver:
		return "GAME_OVER"
	case GameQuit:
		return "QUIT"
	}
	return "UNKNOWN"
}

// Freezes reports whether characters are held IMMOVABLE in this game state.
func (s GameStateID) Freezes() bool {
	return s == GameReady || s == GamePaused || s == GameWin
}

// Side separates player-owned from enemy-owned characters and projectiles.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Opponent returns the side that projectiles of s can damage.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// ArchetypeID identifies a character template.
type ArchetypeID int

const (
	ArchetypePlayer ArchetypeID = iota
	ArchetypeGrunt
	ArchetypeBrute
	ArchetypeTank
	ArchetypeWarlord
)

// WeaponKind identifies a weapon template.
type WeaponKind int

const (
	WeaponNone WeaponKind = iota
	WeaponWoodenSword
	WeaponPrimeSword
	WeaponAxe
	WeaponDoubleAxe
	WeaponBow
	WeaponWand
)

func (k WeaponKind) String() string {
	if w, ok := Weapons[k]; ok {
		return w.Name
	}
	return "none"
}

// ProjectileKind identifies a projectile template.
type ProjectileKind int

const (
	ProjectileWoodenSwing ProjectileKind = iota
	ProjectilePrimeSwing
	ProjectileAxe
	ProjectileArrow
	ProjectileBolt
)

// ActionID is a discrete command produced by an input source.
type ActionID int

const (
	ActionAttack ActionID = iota
	ActionCycleWeapon
	ActionTogglePause
	ActionStart
	ActionRestart
	ActionSkipWave
	ActionQuit
)

func (a ActionID) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionCycleWeapon:
		return "cycle-weapon"
	case ActionTogglePause:
		return "toggle-pause"
	case ActionStart:
		return "start"
	case ActionRestart:
		return "restart"
	case ActionSkipWave:
		return "skip-wave"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// Command is one discrete input event. Delta is used by ActionCycleWeapon.
type Command struct {
	Action ActionID
	Delta  int
}
