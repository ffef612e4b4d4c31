package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the single render layer used by the arena scene.
const LayerDefault ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	TPS    int
}

// ArchetypeConfig is the immutable template for a character kind.
type ArchetypeConfig struct {
	Name     string
	Health   float64
	MinSpeed float64
	MaxSpeed float64

	// Points awarded when a character of this archetype is killed
	Points int

	// Upgrade is picked up once health falls below UpgradeBelow*Health.
	// WeaponNone disables the upgrade.
	Upgrade      WeaponKind
	UpgradeBelow float64

	Tint color.RGBA
}

// Unlock pairs a weapon with the score at which the player earns it.
type Unlock struct {
	Weapon WeaponKind
	Score  int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health float64
	Speed  float64

	// Unlocks are granted in order as the score grows
	Unlocks []Unlock
}

// WeaponConfig is the immutable template for a weapon kind.
type WeaponConfig struct {
	Name      string
	Damage    float64
	HitRadius float64
	// FireRate is the minimum number of ticks between two attacks
	FireRate   int
	Spread     int // degrees, 0 for single projectile weapons
	Projectile ProjectileKind
}

// ProjectileConfig is the immutable template for a projectile kind.
type ProjectileConfig struct {
	Name          string
	Range         float64
	Speed         float64
	Size          float64
	Frames        int
	FrameDistance float64
	AngleOffset   float64 // sprite rotation offset, degrees
}

// Radius is the hit volume radius of the projectile.
func (p ProjectileConfig) Radius() float64 {
	return p.Size / 2
}

type CombatConfig struct {
	CharacterSize float64
	// Critical state applies at or below CriticalFraction of initial health
	CriticalFraction float64
	// HitStateTicks is how long HIT lasts before the state is recomputed
	HitStateTicks int
	// DespawnDelayTicks is how long a killed enemy lingers
	DespawnDelayTicks int
	// FadeAlpha is the opacity a killed enemy fades to before despawning
	FadeAlpha float64
	// CullMargin is how far outside the arena a projectile may fly
	CullMargin float64
	// SpreadStep is the angle between two projectiles of a spread weapon
	SpreadStep int
	// CellSize of the collision space grid
	CellSize int
}

// WaveGroup is one entry of a wave: Count enemies of Archetype wielding Weapon.
type WaveGroup struct {
	Archetype ArchetypeID
	Count     int
	Weapon    WeaponKind
}

type WaveConfig struct {
	Groups []WaveGroup
}

// ArenaConfig holds fallback bounds used when no arena map is loaded.
type ArenaConfig struct {
	Width       float64
	Height      float64
	PlayerSpawn [2]float64
	// SpawnArea is the enemy spawn rectangle: x0, y0, x1, y1
	SpawnArea [4]float64
	MapPath   string
}

type ColorConfig struct {
	Background color.RGBA
	Player     color.RGBA
	Critical   color.RGBA
	Killed     color.RGBA
	Hit        color.RGBA
	Projectile color.RGBA
	HUD        color.RGBA
	Overlay    color.RGBA
}

var C *Config
var Player PlayerConfig
var Combat CombatConfig
var Arena ArenaConfig
var Colors ColorConfig

var (
	Archetypes  map[ArchetypeID]ArchetypeConfig
	Weapons     map[WeaponKind]WeaponConfig
	Projectiles map[ProjectileKind]ProjectileConfig
	Waves       []WaveConfig
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 1280,
		TPS:    60,
	}

	Player = PlayerConfig{
		Health: 1000,
		Speed:  3,
		Unlocks: []Unlock{
			{Weapon: WeaponWoodenSword, Score: 0},
			{Weapon: WeaponPrimeSword, Score: 100},
			{Weapon: WeaponAxe, Score: 200},
			{Weapon: WeaponDoubleAxe, Score: 500},
			{Weapon: WeaponBow, Score: 750},
			{Weapon: WeaponWand, Score: 1300},
		},
	}

	Combat = CombatConfig{
		CharacterSize:     64,
		CriticalFraction:  0.2,
		HitStateTicks:     12,
		DespawnDelayTicks: 2 * C.TPS,
		FadeAlpha:         0.25,
		CullMargin:        100,
		SpreadStep:        60,
		CellSize:          32,
	}

	Archetypes = map[ArchetypeID]ArchetypeConfig{
		ArchetypePlayer: {
			Name:     "player",
			Health:   Player.Health,
			MinSpeed: Player.Speed,
			MaxSpeed: Player.Speed,
			Tint:     color.RGBA{R: 80, G: 170, B: 255, A: 255},
		},
		ArchetypeGrunt: {
			Name:     "grunt",
			Health:   50,
			MinSpeed: 1.8,
			MaxSpeed: 2.5,
			Points:   150,
			Tint:     color.RGBA{R: 120, G: 200, B: 90, A: 255},
		},
		ArchetypeBrute: {
			Name:     "brute",
			Health:   80,
			MinSpeed: 1.5,
			MaxSpeed: 2,
			Points:   200,
			Tint:     color.RGBA{R: 230, G: 170, B: 60, A: 255},
		},
		ArchetypeTank: {
			Name:     "tank",
			Health:   120,
			MinSpeed: 1,
			MaxSpeed: 1.5,
			Points:   250,
			Tint:     color.RGBA{R: 170, G: 110, B: 220, A: 255},
		},
		ArchetypeWarlord: {
			Name:         "warlord",
			Health:       1000,
			MinSpeed:     1.2,
			MaxSpeed:     1.2,
			Points:       300,
			Upgrade:      WeaponBow,
			UpgradeBelow: 0.5,
			Tint:         color.RGBA{R: 220, G: 60, B: 60, A: 255},
		},
	}

	Weapons = map[WeaponKind]WeaponConfig{
		WeaponWoodenSword: {Name: "wooden sword", Damage: 20, HitRadius: 35, FireRate: 10, Projectile: ProjectileWoodenSwing},
		WeaponPrimeSword:  {Name: "prime sword", Damage: 50, HitRadius: 70, FireRate: 10, Projectile: ProjectilePrimeSwing},
		WeaponAxe:         {Name: "axe", Damage: 30, HitRadius: 100, FireRate: 10, Spread: 180, Projectile: ProjectileAxe},
		WeaponDoubleAxe:   {Name: "double axe", Damage: 30, HitRadius: 100, FireRate: 10, Spread: 360, Projectile: ProjectileAxe},
		WeaponBow:         {Name: "bow", Damage: 30, HitRadius: 180, FireRate: 10, Projectile: ProjectileArrow},
		WeaponWand:        {Name: "wand", Damage: 100, HitRadius: 180, FireRate: 15, Projectile: ProjectileBolt},
	}

	// Melee swings travel a short distance in front of the wielder.
	Projectiles = map[ProjectileKind]ProjectileConfig{
		ProjectileWoodenSwing: {Name: "wooden swing", Range: 30, Speed: 3, Size: 90, Frames: 6, FrameDistance: 5, AngleOffset: -135},
		ProjectilePrimeSwing:  {Name: "prime swing", Range: 60, Speed: 3, Size: 90, Frames: 4, FrameDistance: 15, AngleOffset: -135},
		ProjectileAxe:         {Name: "axe", Range: 30, Speed: 3, Size: 90, Frames: 1, FrameDistance: 30},
		ProjectileArrow:       {Name: "arrow", Range: 10000, Speed: 10, Size: 50, Frames: 1, FrameDistance: 10000, AngleOffset: 90},
		ProjectileBolt:        {Name: "bolt", Range: 10000, Speed: 10, Size: 50, Frames: 5, FrameDistance: 40, AngleOffset: 90},
	}

	Waves = []WaveConfig{
		{Groups: []WaveGroup{
			{Archetype: ArchetypeGrunt, Count: 1, Weapon: WeaponWoodenSword},
			{Archetype: ArchetypeBrute, Count: 1, Weapon: WeaponPrimeSword},
		}},
		{Groups: []WaveGroup{
			{Archetype: ArchetypeGrunt, Count: 1, Weapon: WeaponWoodenSword},
			{Archetype: ArchetypeBrute, Count: 1, Weapon: WeaponPrimeSword},
		}},
		{Groups: []WaveGroup{
			{Archetype: ArchetypeGrunt, Count: 1, Weapon: WeaponBow},
			{Archetype: ArchetypeBrute, Count: 1, Weapon: WeaponPrimeSword},
			{Archetype: ArchetypeTank, Count: 1, Weapon: WeaponAxe},
		}},
		{Groups: []WaveGroup{
			{Archetype: ArchetypeWarlord, Count: 1, Weapon: WeaponDoubleAxe},
		}},
	}

	Arena = ArenaConfig{
		Width:       float64(C.Width),
		Height:      float64(C.Height),
		PlayerSpawn: [2]float64{200, 200},
		SpawnArea:   [4]float64{0, 0, 1200, 1200},
		MapPath:     "levels/arena.tmx",
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 24, G: 26, B: 32, A: 255},
		Player:     color.RGBA{R: 80, G: 170, B: 255, A: 255},
		Critical:   color.RGBA{R: 255, G: 40, B: 40, A: 255},
		Killed:     color.RGBA{R: 90, G: 90, B: 90, A: 255},
		Hit:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Projectile: color.RGBA{R: 250, G: 230, B: 120, A: 255},
		HUD:        color.RGBA{R: 235, G: 235, B: 235, A: 255},
		Overlay:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}
}
