package component

import "github.com/jakecoffman/cp"

// Owner tags who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	// OwnerEnemy is reserved; nothing fires enemy bullets yet.
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	}
	return "unknown"
}

// Bullet is an unconstrained projectile box.
type Bullet struct {
	Center      cp.Vector
	HalfExtents cp.Vector
	Velocity    cp.Vector
	Damage      float64
	Owner       Owner
}

// Advance moves the bullet. No clamp, gravity or friction applies.
func (b *Bullet) Advance(dt float64) {
	if b == nil {
		return
	}
	b.Center = b.Center.Add(b.Velocity.Mult(dt))
}

// Bounds returns the bullet box.
func (b *Bullet) Bounds() cp.BB {
	if b == nil {
		return cp.BB{}
	}
	return cp.NewBBForExtents(b.Center, b.HalfExtents.X, b.HalfExtents.Y)
}

// InWorld reports whether any part of the box still touches the world
// rectangle [0, size].
func (b *Bullet) InWorld(size cp.Vector) bool {
	if b == nil {
		return false
	}
	return b.Bounds().Intersects(cp.BB{L: 0, B: 0, R: size.X, T: size.Y})
}
