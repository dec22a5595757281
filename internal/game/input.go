package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Command is the single observer intent resolved from the keyboard each
// frame.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandRotateLeft
	CommandRotateRight
)

// InputHandler resolves the currently pressed keys into one command per
// frame. When several relevant keys are held, movement wins over rotation
// and the priority order is up, down, left, right, rotate-left,
// rotate-right.
type InputHandler struct{}

func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// PollCommand scans the pressed keys and returns the winning command.
func (ih *InputHandler) PollCommand() Command {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		return CommandMoveUp
	case ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		return CommandMoveDown
	case ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		return CommandMoveLeft
	case ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		return CommandMoveRight
	case ebiten.IsKeyPressed(ebiten.KeyQ):
		return CommandRotateLeft
	case ebiten.IsKeyPressed(ebiten.KeyE):
		return CommandRotateRight
	}
	return CommandNone
}
