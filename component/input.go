package component

import (
	"fmt"
	"strings"
)

// InputID identifies a recognized held input.
type InputID uint8

const (
	InputJump InputID = iota
	InputChargeFire
	InputMoveLeft
	InputMoveRight
	InputAimUp
	InputAimDown
	InputAimLock

	inputCount
)

var inputNames = [inputCount]string{
	InputJump:       "jump",
	InputChargeFire: "charge_fire",
	InputMoveLeft:   "move_left",
	InputMoveRight:  "move_right",
	InputAimUp:      "aim_up",
	InputAimDown:    "aim_down",
	InputAimLock:    "aim_lock",
}

func (id InputID) String() string {
	if id >= inputCount {
		return fmt.Sprintf("input(%d)", uint8(id))
	}
	return inputNames[id]
}

// ParseInputID resolves a name such as "move_left" to its InputID.
func ParseInputID(name string) (InputID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range inputNames {
		if n == name {
			return InputID(id), true
		}
	}
	return 0, false
}

// InputSet is the set of inputs held during a tick. It is a value; passing it
// around copies it.
type InputSet uint16

// NewInputSet builds a set from ids.
func NewInputSet(ids ...InputID) InputSet {
	var s InputSet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// With returns the set including id. Unknown ids are ignored.
func (s InputSet) With(id InputID) InputSet {
	if id >= inputCount {
		return s
	}
	return s | 1<<id
}

// Without returns the set excluding id.
func (s InputSet) Without(id InputID) InputSet {
	if id >= inputCount {
		return s
	}
	return s &^ (1 << id)
}

// Has reports whether id is held.
func (s InputSet) Has(id InputID) bool {
	return id < inputCount && s&(1<<id) != 0
}

// Empty reports whether nothing is held.
func (s InputSet) Empty() bool {
	return s == 0
}

// IDs returns the held ids in ascending order.
func (s InputSet) IDs() []InputID {
	var out []InputID
	for id := InputID(0); id < inputCount; id++ {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func (s InputSet) String() string {
	ids := s.IDs()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Edge is a discrete press/release event delivered outside the held set.
type Edge uint8

const (
	EdgeFireRelease Edge = iota + 1
	EdgeAimLockRelease
)

func (e Edge) String() string {
	switch e {
	case EdgeFireRelease:
		return "fire_release"
	case EdgeAimLockRelease:
		return "aim_lock_release"
	}
	return fmt.Sprintf("edge(%d)", uint8(e))
}

// ParseEdge resolves an edge name.
func ParseEdge(name string) (Edge, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fire", "fire_release":
		return EdgeFireRelease, true
	case "aim_lock_release", "aim_release":
		return EdgeAimLockRelease, true
	}
	return 0, false
}
