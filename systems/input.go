package systems

import (
	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads, then writes the movement and
// attack keys into the shared Keyboard record the simulation reads.
// Must run before UpdateCharacter.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs.World)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	keyboardUsed, gamepadUsed := false, false

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	left, right, up, down := analogStick(gamepadIDs)
	for action, held := range map[cfg.ActionID]bool{
		cfg.ActionMoveLeft:  left,
		cfg.ActionMoveRight: right,
		cfg.ActionMoveUp:    up,
		cfg.ActionMoveDown:  down,
	} {
		if held {
			input.Current[action] = true
			gamepadUsed = true
		}
	}

	if gamepadUsed {
		input.Gamepad = true
	} else if keyboardUsed {
		input.Gamepad = false
	}

	WriteKeyboard(input, GetOrCreateServices(ecs.World).Keyboard)
}

// WriteKeyboard copies the gameplay actions of input into kb.
func WriteKeyboard(input *components.InputData, kb *ports.Keyboard) {
	kb.Left = input.Current[cfg.ActionMoveLeft]
	kb.Right = input.Current[cfg.ActionMoveRight]
	kb.Up = input.Current[cfg.ActionMoveUp]
	kb.Down = input.Current[cfg.ActionMoveDown]
	kb.Space = input.Current[cfg.ActionFinSlap]
	kb.D = input.Current[cfg.ActionBubble]
}

// analogStick reads the left stick of every gamepad past the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || h < -deadzone
		right = right || h > deadzone
		up = up || v < -deadzone
		down = down || v > deadzone
	}
	return
}

// GetOrCreateInput returns the singleton Input component, creating if needed.
func GetOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of an action derived from this step and the
// previous one.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
