package window

import "github.com/ushitora-anqou/simple/event"

type nativeKind int

const (
	nativeOther nativeKind = iota
	nativeQuit
	nativeKeyDown
	nativeKeyUp
	nativeButtonDown
	nativeButtonUp
)

// nativeEvent is the part of a native event the portable mapping needs.
// Scancodes and button numbers use SDL numbering; scancode 0 is unknown.
type nativeEvent struct {
	kind     nativeKind
	scancode uint32
	button   uint8
	x, y     int32
}

// translate maps a native event to its portable equivalent, or nil if there
// is none.
func translate(n nativeEvent) event.Event {
	switch n.kind {
	case nativeQuit:
		return event.Quit{}
	case nativeKeyDown, nativeKeyUp:
		if n.scancode == 0 {
			return nil
		}
		return event.Keyboard{IsDown: n.kind == nativeKeyDown, Key: event.Key(n.scancode)}
	case nativeButtonDown, nativeButtonUp:
		return event.Mouse{IsDown: n.kind == nativeButtonDown, Button: event.MouseButton(n.button), X: n.x, Y: n.y}
	}
	return nil
}
