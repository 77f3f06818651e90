package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is a named movement intent bound to one or more keys.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionSprint
	ActionJump
)

// Lookup maps a scancode to its movement action. WASD and the arrow
// keys are aliases, both Shift keys sprint, Space jumps.
func Lookup(code sdl.Scancode) (Action, bool) {
	switch code {
	case sdl.SCANCODE_W, sdl.SCANCODE_UP:
		return ActionForward, true
	case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
		return ActionBackward, true
	case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
		return ActionLeft, true
	case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
		return ActionRight, true
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return ActionSprint, true
	case sdl.SCANCODE_SPACE:
		return ActionJump, true
	}
	return 0, false
}
