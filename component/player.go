package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridgame/common"
)

// Player is the controllable body plus its jump, aim, charge and fire state.
type Player struct {
	Body

	JumpCounter  int
	JumpTimer    int
	ShootTimer   int
	ChargingTime int

	ArmDirection    cp.Vector
	FacingDirection cp.Vector
	IsAiming        bool

	params PlayerParams
}

// NewPlayer creates a player at the configured spawn point. The jump counter
// starts exhausted so the first jump needs ground contact.
func NewPlayer(params PlayerParams) *Player {
	return &Player{
		Body: Body{
			Position: params.Spawn,
			Size:     params.Size,
		},
		JumpCounter:     params.MaxJumps,
		ArmDirection:    cp.Vector{X: 1},
		FacingDirection: cp.Vector{X: 1},
		params:          params,
	}
}

// Params returns the tuning the player was built with.
func (p *Player) Params() PlayerParams {
	if p == nil {
		return PlayerParams{}
	}
	return p.params
}

// SetParams swaps tuning in place, keeping runtime state. Counters are pulled
// back under the new caps.
func (p *Player) SetParams(params PlayerParams) {
	if p == nil {
		return
	}
	p.params = params
	p.Size = params.Size
	p.ChargingTime = min(p.ChargingTime, max(params.MaxCharge, 0))
	p.JumpCounter = min(p.JumpCounter, max(params.MaxJumps, 0))
	p.JumpTimer = min(p.JumpTimer, max(params.JumpCooldown, 0))
	p.ShootTimer = min(p.ShootTimer, max(params.ShootCooldown, 0))
}

// ProcessInputs applies every held input once. Aim-lock is applied before the
// sweep so the result does not depend on iteration order. It reports whether
// a jump fired.
func (p *Player) ProcessInputs(held InputSet) bool {
	if p == nil {
		return false
	}
	if held.Has(InputAimLock) {
		p.SetAiming(true)
	}

	jumped := false
	var aim cp.Vector
	for _, id := range held.IDs() {
		switch id {
		case InputJump:
			if p.tryJump() {
				jumped = true
			}
		case InputMoveLeft:
			if !p.IsAiming {
				p.Velocity.X -= p.params.MoveImpulse
			}
			aim.X--
		case InputMoveRight:
			if !p.IsAiming {
				p.Velocity.X += p.params.MoveImpulse
			}
			aim.X++
		case InputAimUp:
			aim.Y--
		case InputAimDown:
			aim.Y++
		case InputChargeFire:
			if p.ChargingTime < p.params.MaxCharge {
				p.ChargingTime++
			}
		}
	}

	if aim.X != 0 || aim.Y != 0 {
		p.AimInDirection(aim.Normalize())
	}
	return jumped
}

func (p *Player) tryJump() bool {
	if p.JumpCounter >= p.params.MaxJumps || p.JumpTimer != 0 {
		return false
	}
	p.Velocity.Y = p.params.JumpVelocity
	p.JumpTimer = p.params.JumpCooldown
	p.JumpCounter++
	return true
}

// AimInDirection points the arm along dir. Facing only flips when dir has a
// horizontal component.
func (p *Player) AimInDirection(dir cp.Vector) {
	if p == nil {
		return
	}
	if dir.X != 0 {
		p.FacingDirection.X = common.Sign(dir.X)
	}
	p.ArmDirection = cp.ForAngle(math.Atan2(dir.Y, dir.X))
}

// SetAiming toggles the aim-lock stance.
func (p *Player) SetAiming(aiming bool) {
	if p == nil {
		return
	}
	p.IsAiming = aiming
}

// Update integrates the body and counts down the cooldowns.
func (p *Player) Update(dt float64, world WorldParams) Contact {
	if p == nil {
		return Contact{}
	}
	brake := 1.0
	if p.IsAiming {
		brake = p.params.BrakeFriction
	}
	contact := p.Integrate(dt, world, brake)
	if contact.ClampedY {
		p.JumpCounter = 0
	}

	if p.ShootTimer > 0 {
		p.ShootTimer--
	}
	if p.JumpTimer > 0 {
		p.JumpTimer--
	}
	return contact
}

// ReleaseFire spawns a bullet sized by the stored charge. It does nothing
// while the shot cooldown is running.
func (p *Player) ReleaseFire() (Bullet, bool) {
	if p == nil || p.ShootTimer != 0 {
		return Bullet{}, false
	}
	p.ShootTimer = p.params.ShootCooldown

	size := common.Lerp(p.params.BulletMinSize, p.params.BulletMaxSize, p.ChargeFraction())
	center := p.Center().Add(p.ArmDirection.Mult(p.params.ArmOffset + size))
	speed := p.params.BulletSpeed + p.Velocity.Length()

	b := Bullet{
		Center:      center,
		HalfExtents: cp.Vector{X: size, Y: size},
		Velocity:    p.ArmDirection.Normalize().Mult(speed),
		Damage:      p.params.DamagePerSize * size,
		Owner:       OwnerPlayer,
	}
	p.ChargingTime = 0
	return b, true
}

// ChargeFraction maps the charge accumulator into [0, 1].
func (p *Player) ChargeFraction() float64 {
	if p == nil || p.params.MaxCharge <= 0 {
		return 0
	}
	return float64(p.ChargingTime) / float64(p.params.MaxCharge)
}

// ArmPosition is the top-left of the arm box drawn next to the body.
func (p *Player) ArmPosition() cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	inset := p.Size.Sub(cp.Vector{X: p.params.ArmSize, Y: p.params.ArmSize}).Mult(0.5)
	return p.Position.Add(inset).Add(p.ArmDirection.Mult(p.params.ArmOffset))
}
