// Package event defines the portable input events a Window hands to
// application code, and the FIFO queue that buffers them between frames.
package event

import "fmt"

// Event is one of Keyboard, Mouse or Quit. Values are comparable with ==.
type Event interface {
	isEvent()
}

// Keyboard is a key press (IsDown) or release.
type Keyboard struct {
	IsDown bool
	Key    Key
}

// Mouse is a button press (IsDown) or release. X and Y hold the cursor
// position at the time of the event, which may differ from MousePosition by
// the time the event is handled.
type Mouse struct {
	IsDown bool
	Button MouseButton
	X, Y   int32
}

// Quit is sent when the user asks the OS to close the application. Window
// consumes it itself, so it never comes out of Window.NextEvent.
type Quit struct{}

func (Keyboard) isEvent() {}
func (Mouse) isEvent()    {}
func (Quit) isEvent()     {}

func (e Keyboard) String() string {
	if e.IsDown {
		return fmt.Sprintf("Keyboard{down %d}", e.Key)
	}
	return fmt.Sprintf("Keyboard{up %d}", e.Key)
}

func (e Mouse) String() string {
	state := "up"
	if e.IsDown {
		state = "down"
	}
	return fmt.Sprintf("Mouse{%s %s (%d, %d)}", state, e.Button, e.X, e.Y)
}

func (Quit) String() string {
	return "Quit"
}
