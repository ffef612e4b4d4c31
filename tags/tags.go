package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for the collision broadphase
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvPlayerShot = "PlayerShot"
	ResolvEnemyShot  = "EnemyShot"
)
