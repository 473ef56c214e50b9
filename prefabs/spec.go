package prefabs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridgame/component"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("prefabs: invalid config")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type WorldSpec struct {
	Name     string  `yaml:"name"`
	Size     VecSpec `yaml:"size"`
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BulletSpec struct {
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	Speed         float64 `yaml:"speed"`
	DamagePerSize float64 `yaml:"damage_per_size"`
}

type PlayerSpec struct {
	Name          string     `yaml:"name"`
	Spawn         VecSpec    `yaml:"spawn"`
	Size          VecSpec    `yaml:"size"`
	ArmOffset     float64    `yaml:"arm_offset"`
	ArmSize       float64    `yaml:"arm_size"`
	JumpVelocity  float64    `yaml:"jump_velocity"`
	MoveImpulse   float64    `yaml:"move_impulse"`
	MaxJumps      int        `yaml:"max_jumps"`
	JumpCooldown  int        `yaml:"jump_cooldown_frames"`
	ShootCooldown int        `yaml:"shoot_cooldown_frames"`
	MaxCharge     int        `yaml:"max_charge"`
	BrakeFriction float64    `yaml:"brake_friction"`
	Bullet        BulletSpec `yaml:"bullet"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name        string  `yaml:"name"`
	Resolution  VecSpec `yaml:"resolution"`
	Window      VecSpec `yaml:"window"`
	FollowSpeed float64 `yaml:"follow_speed"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadConfig reads world.yaml, player.yaml and camera.yaml and validates the
// combination.
func LoadConfig() (component.Config, error) {
	world, err := LoadWorldSpec()
	if err != nil {
		return component.Config{}, err
	}
	player, err := LoadPlayerSpec()
	if err != nil {
		return component.Config{}, err
	}
	camera, err := LoadCameraSpec()
	if err != nil {
		return component.Config{}, err
	}
	return BuildConfig(world, player, camera)
}

// BuildConfig converts specs into runtime tuning.
func BuildConfig(world *WorldSpec, player *PlayerSpec, camera *CameraSpec) (component.Config, error) {
	if world == nil || player == nil || camera == nil {
		return component.Config{}, fmt.Errorf("%w: missing spec", ErrInvalidConfig)
	}
	cfg := component.Config{
		World: component.WorldParams{
			Size:     world.Size.Vector(),
			Gravity:  world.Gravity,
			Friction: world.Friction,
		},
		Player: component.PlayerParams{
			Spawn:         player.Spawn.Vector(),
			Size:          player.Size.Vector(),
			ArmOffset:     player.ArmOffset,
			ArmSize:       player.ArmSize,
			JumpVelocity:  player.JumpVelocity,
			MoveImpulse:   player.MoveImpulse,
			MaxJumps:      player.MaxJumps,
			JumpCooldown:  player.JumpCooldown,
			ShootCooldown: player.ShootCooldown,
			MaxCharge:     player.MaxCharge,
			BrakeFriction: player.BrakeFriction,
			BulletMinSize: player.Bullet.MinSize,
			BulletMaxSize: player.Bullet.MaxSize,
			BulletSpeed:   player.Bullet.Speed,
			DamagePerSize: player.Bullet.DamagePerSize,
		},
		Camera: component.CameraParams{
			Resolution:  camera.Resolution.Vector(),
			Window:      camera.Window.Vector(),
			FollowSpeed: camera.FollowSpeed,
		},
	}
	if err := Validate(cfg); err != nil {
		return component.Config{}, err
	}
	return cfg, nil
}

// Validate rejects tuning the simulation cannot run with.
func Validate(cfg component.Config) error {
	w, p, c := cfg.World, cfg.Player, cfg.Camera
	switch {
	case w.Size.X <= 0 || w.Size.Y <= 0:
		return fmt.Errorf("%w: world size %gx%g must be positive", ErrInvalidConfig, w.Size.X, w.Size.Y)
	case p.Size.X <= 0 || p.Size.Y <= 0:
		return fmt.Errorf("%w: player size %gx%g must be positive", ErrInvalidConfig, p.Size.X, p.Size.Y)
	case p.Size.X > w.Size.X || p.Size.Y > w.Size.Y:
		return fmt.Errorf("%w: world %gx%g smaller than player %gx%g", ErrInvalidConfig, w.Size.X, w.Size.Y, p.Size.X, p.Size.Y)
	case w.Gravity < 0:
		return fmt.Errorf("%w: gravity %g must not be negative", ErrInvalidConfig, w.Gravity)
	case w.Friction < 0 || p.BrakeFriction < 0:
		return fmt.Errorf("%w: friction must not be negative", ErrInvalidConfig)
	case p.MaxJumps < 0 || p.JumpCooldown < 0 || p.ShootCooldown < 0:
		return fmt.Errorf("%w: jump and shoot counters must not be negative", ErrInvalidConfig)
	case p.MaxCharge <= 0:
		return fmt.Errorf("%w: max charge %d must be positive", ErrInvalidConfig, p.MaxCharge)
	case p.BulletMinSize <= 0 || p.BulletMaxSize < p.BulletMinSize:
		return fmt.Errorf("%w: bullet size range [%g, %g] is invalid", ErrInvalidConfig, p.BulletMinSize, p.BulletMaxSize)
	case c.Resolution.X <= 0 || c.Resolution.Y <= 0:
		return fmt.Errorf("%w: camera resolution %gx%g must be positive", ErrInvalidConfig, c.Resolution.X, c.Resolution.Y)
	case c.Window.X <= 0 || c.Window.Y <= 0:
		return fmt.Errorf("%w: window %gx%g must be positive", ErrInvalidConfig, c.Window.X, c.Window.Y)
	case c.FollowSpeed <= 0 || c.FollowSpeed > 1:
		return fmt.Errorf("%w: camera follow speed %g outside (0, 1]", ErrInvalidConfig, c.FollowSpeed)
	}
	return nil
}
