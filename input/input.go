// Package input turns keyboard and gamepad state into per-frame intents.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bugrun/obj"
)

// Input polls keyboard and the first gamepad.
type Input struct {
	prevStick obj.Direction
}

func New() *Input {
	return &Input{}
}

// Update polls devices and returns this frame's intent.
func (i *Input) Update() obj.Intent {
	var in obj.Intent

	switch {
	case keyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA):
		in.Move = obj.DirLeft
	case keyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD):
		in.Move = obj.DirRight
	case keyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW):
		in.Move = obj.DirUp
	case keyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS):
		in.Move = obj.DirDown
	}

	in.Confirm = keyJustPressed(ebiten.KeyEnter, ebiten.KeySpace)
	in.Pause = keyJustPressed(ebiten.KeyP, ebiten.KeyEscape)
	in.Copy = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		i.prevStick = obj.DirNone
		return in
	}
	gid := ids[0]

	// D-pad buttons are edge-triggered by inpututil; the stick is turned
	// into a step only when it leaves the dead zone.
	pad := map[ebiten.StandardGamepadButton]obj.Direction{
		ebiten.StandardGamepadButtonLeftLeft:   obj.DirLeft,
		ebiten.StandardGamepadButtonLeftRight:  obj.DirRight,
		ebiten.StandardGamepadButtonLeftTop:    obj.DirUp,
		ebiten.StandardGamepadButtonLeftBottom: obj.DirDown,
	}
	for b, d := range pad {
		if in.Move == obj.DirNone && inpututil.IsStandardGamepadButtonJustPressed(gid, b) {
			in.Move = d
		}
	}

	stick := stickDirection(
		ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal),
		ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical),
	)
	if in.Move == obj.DirNone && stick != i.prevStick {
		in.Move = stick
	}
	i.prevStick = stick

	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		in.Confirm = true
	}
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
		in.Pause = true
	}
	return in
}

const stickDeadZone = 0.5

func stickDirection(x, y float64) obj.Direction {
	ax, ay := x, y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	switch {
	case ax < stickDeadZone && ay < stickDeadZone:
		return obj.DirNone
	case ax >= ay && x < 0:
		return obj.DirLeft
	case ax >= ay:
		return obj.DirRight
	case y < 0:
		return obj.DirUp
	default:
		return obj.DirDown
	}
}

func keyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
