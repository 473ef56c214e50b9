package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridgame/component"
)

const stickDeadzone = 0.3

var keyBindings = []struct {
	key ebiten.Key
	id  component.InputID
}{
	{ebiten.KeySpace, component.InputJump},
	{ebiten.KeyX, component.InputChargeFire},
	{ebiten.KeyArrowLeft, component.InputMoveLeft},
	{ebiten.KeyA, component.InputMoveLeft},
	{ebiten.KeyArrowRight, component.InputMoveRight},
	{ebiten.KeyD, component.InputMoveRight},
	{ebiten.KeyArrowUp, component.InputAimUp},
	{ebiten.KeyW, component.InputAimUp},
	{ebiten.KeyArrowDown, component.InputAimDown},
	{ebiten.KeyS, component.InputAimDown},
	{ebiten.KeyShiftLeft, component.InputAimLock},
}

// Keyboard polls keyboard and the first gamepad into a held set. Fire and
// aim-lock releases are reported as edges.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Poll(tick uint64) (component.InputSet, []component.Edge, error) {
	var held component.InputSet
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.key) {
			held = held.With(b.id)
		}
	}

	fireReleased := inpututil.IsKeyJustReleased(ebiten.KeyX)
	aimReleased := inpututil.IsKeyJustReleased(ebiten.KeyShiftLeft)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]

		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			if lx < 0 {
				held = held.With(component.InputMoveLeft)
			} else {
				held = held.With(component.InputMoveRight)
			}
		}
		if math.Abs(ly) > stickDeadzone {
			if ly < 0 {
				held = held.With(component.InputAimUp)
			} else {
				held = held.With(component.InputAimDown)
			}
		}

		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			held = held.With(component.InputJump)
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft) {
			held = held.With(component.InputChargeFire)
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft) {
			held = held.With(component.InputAimLock)
		}
		fireReleased = fireReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightLeft)
		aimReleased = aimReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	}

	var edges []component.Edge
	if fireReleased {
		edges = append(edges, component.EdgeFireRelease)
	}
	if aimReleased && !held.Has(component.InputAimLock) {
		edges = append(edges, component.EdgeAimLockRelease)
	}
	return held, edges, nil
}
