package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for the zone space
const (
	ResolvCharacter = "character"
	ResolvDeadZone  = "deadzone"
	ResolvPickup    = "pickup"
)
