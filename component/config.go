package component

import "github.com/jakecoffman/cp"

// WorldParams are the fixed world constants shared by every body in a tick.
type WorldParams struct {
	Size     cp.Vector
	Gravity  float64
	Friction float64
}

// PlayerParams tunes the player controller.
type PlayerParams struct {
	Spawn         cp.Vector
	Size          cp.Vector
	ArmOffset     float64
	ArmSize       float64
	JumpVelocity  float64
	MoveImpulse   float64
	MaxJumps      int
	JumpCooldown  int
	ShootCooldown int
	MaxCharge     int
	BrakeFriction float64
	BulletMinSize float64
	BulletMaxSize float64
	BulletSpeed   float64
	DamagePerSize float64
}

// CameraParams describes the viewport the camera tracks with.
type CameraParams struct {
	Resolution  cp.Vector
	Window      cp.Vector
	FollowSpeed float64
}

// WindowSize returns the window in whole pixels.
func (c CameraParams) WindowSize() (int, int) {
	return int(c.Window.X), int(c.Window.Y)
}

// Config bundles everything a world needs to run.
type Config struct {
	World  WorldParams
	Player PlayerParams
	Camera CameraParams
}

// DefaultConfig mirrors the embedded prefab specs.
func DefaultConfig() Config {
	return Config{
		World: WorldParams{
			Size:     cp.Vector{X: 320, Y: 120},
			Gravity:  200,
			Friction: 1,
		},
		Player: PlayerParams{
			Spawn:         cp.Vector{X: 20, Y: 20},
			Size:          cp.Vector{X: 10, Y: 18},
			ArmOffset:     8,
			ArmSize:       5,
			JumpVelocity:  -150,
			MoveImpulse:   2,
			MaxJumps:      2,
			JumpCooldown:  20,
			ShootCooldown: 10,
			MaxCharge:     100,
			BrakeFriction: 10,
			BulletMinSize: 1,
			BulletMaxSize: 4,
			BulletSpeed:   160,
			DamagePerSize: 10,
		},
		Camera: CameraParams{
			Resolution:  cp.Vector{X: 160, Y: 120},
			Window:      cp.Vector{X: 1024, Y: 768},
			FollowSpeed: 0.2,
		},
	}
}
