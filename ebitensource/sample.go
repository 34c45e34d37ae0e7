package ebitensource

import (
	"image"

	"github.com/automoto/inputkit/config"
	"github.com/automoto/inputkit/device"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	dmath "github.com/yohamta/donburi/features/math"
)

// AxisValue samples a vector action against cat's bindings. Coordinates
// follow ebiten's screen convention: x grows rightward, y grows downward, so
// stick-up and the Up key both yield negative y. Unbound actions sample as
// the zero vector.
func (s *Source) AxisValue(cat device.Category, id config.ActionID) dmath.Vec2 {
	b, ok := s.binding(cat, id)
	if !ok {
		return dmath.Vec2{}
	}

	switch cat {
	case device.CategoryKeyboard:
		return keyVector(b.MoveKeys)
	case device.CategoryGamepad:
		return s.stickVector(b.Stick)
	case device.CategoryTouch:
		return s.touchVector(b.Zone)
	}
	return dmath.Vec2{}
}

// ButtonValue samples a boolean action against cat's bindings. Unbound
// actions sample as false.
func (s *Source) ButtonValue(cat device.Category, id config.ActionID) bool {
	b, ok := s.binding(cat, id)
	if !ok {
		return false
	}

	switch cat {
	case device.CategoryKeyboard:
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				return true
			}
		}
	case device.CategoryGamepad:
		for _, pad := range s.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
				continue
			}
			for _, btn := range b.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
					return true
				}
			}
		}
	case device.CategoryTouch:
		rect := s.zoneRect(b.Zone)
		for _, tid := range s.touchIDs {
			if s.hasMove && tid == s.moveTouch {
				continue // the virtual stick touch is not a button press
			}
			x, y := ebiten.TouchPosition(tid)
			if image.Pt(x, y).In(rect) {
				return true
			}
		}
	}
	return false
}

func (s *Source) binding(cat device.Category, id config.ActionID) (config.Binding, bool) {
	m, ok := s.maps[cat]
	if !ok {
		return config.Binding{}, false
	}
	return m.Binding(id)
}

func keyVector(mk *config.MoveKeys) dmath.Vec2 {
	if mk == nil {
		return dmath.Vec2{}
	}
	var v dmath.Vec2
	if anyKeyPressed(mk.Left) {
		v.X -= 1
	}
	if anyKeyPressed(mk.Right) {
		v.X += 1
	}
	if anyKeyPressed(mk.Up) {
		v.Y -= 1
	}
	if anyKeyPressed(mk.Down) {
		v.Y += 1
	}
	return v
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// stickVector reads the selected stick from the first standard-layout pad
// that deflects it beyond the deadzone.
func (s *Source) stickVector(stick config.Stick) dmath.Vec2 {
	hAxis, vAxis := ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical
	switch stick {
	case config.StickRight:
		hAxis, vAxis = ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical
	case config.StickNone:
		return dmath.Vec2{}
	}

	for _, id := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := dmath.Vec2{
			X: s.applyDeadzone(ebiten.StandardGamepadAxisValue(id, hAxis)),
			Y: s.applyDeadzone(ebiten.StandardGamepadAxisValue(id, vAxis)),
		}
		if v.X != 0 || v.Y != 0 {
			return v
		}
	}
	return dmath.Vec2{}
}

func (s *Source) applyDeadzone(v float64) float64 {
	if v > -s.deadzone && v < s.deadzone {
		return 0
	}
	return v
}

// trackMoveTouch maintains the virtual stick: the first touch landing in the
// move zone becomes the stick origin until it is released.
func (s *Source) trackMoveTouch() {
	if s.hasMove && inpututil.IsTouchJustReleased(s.moveTouch) {
		s.hasMove = false
	}
	if s.hasMove {
		return
	}

	moveZone := config.ZoneNone
	if b, ok := s.binding(device.CategoryTouch, config.ActionMove); ok {
		moveZone = b.Zone
	}
	if moveZone == config.ZoneNone {
		return
	}

	rect := s.zoneRect(moveZone)
	for _, tid := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(tid)
		if image.Pt(x, y).In(rect) {
			s.moveTouch = tid
			s.hasMove = true
			s.moveOriginX, s.moveOriginY = x, y
			return
		}
	}
}

// touchVector deflects the virtual stick by the drag from its origin,
// clamped to the unit circle's bounding square.
func (s *Source) touchVector(zone config.TouchZone) dmath.Vec2 {
	if zone == config.ZoneNone || !s.hasMove {
		return dmath.Vec2{}
	}
	x, y := ebiten.TouchPosition(s.moveTouch)
	v := dmath.Vec2{
		X: clamp(float64(x-s.moveOriginX) / moveTouchRadius),
		Y: clamp(float64(y-s.moveOriginY) / moveTouchRadius),
	}
	return v
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func (s *Source) zoneRect(zone config.TouchZone) image.Rectangle {
	w, h := s.width, s.height
	switch zone {
	case config.ZoneLeftHalf:
		return image.Rect(0, 0, w/2, h)
	case config.ZoneRightHalf:
		return image.Rect(w/2, 0, w, h)
	case config.ZoneTopLeft:
		return image.Rect(0, 0, w/4, h/4)
	case config.ZoneTopRight:
		return image.Rect(w*3/4, 0, w, h/4)
	}
	return image.Rectangle{}
}
