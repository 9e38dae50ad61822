package event

// Key identifies a physical key. Values follow the USB HID usage ids used by
// SDL scancodes, so the SDL backend converts them without a lookup table.
type Key uint32

const (
	KEY_UNKNOWN Key = 0

	KEY_A Key = 4 + iota - 1
	KEY_B
	KEY_C
	KEY_D
	KEY_E
	KEY_F
	KEY_G
	KEY_H
	KEY_I
	KEY_J
	KEY_K
	KEY_L
	KEY_M
	KEY_N
	KEY_O
	KEY_P
	KEY_Q
	KEY_R
	KEY_S
	KEY_T
	KEY_U
	KEY_V
	KEY_W
	KEY_X
	KEY_Y
	KEY_Z
	KEY_1
	KEY_2
	KEY_3
	KEY_4
	KEY_5
	KEY_6
	KEY_7
	KEY_8
	KEY_9
	KEY_0
	KEY_RETURN
	KEY_ESCAPE
	KEY_BACKSPACE
	KEY_TAB
	KEY_SPACE
)

const (
	KEY_RIGHT Key = 79
	KEY_LEFT  Key = 80
	KEY_DOWN  Key = 81
	KEY_UP    Key = 82
)

// MouseButton follows SDL button numbering.
type MouseButton uint8

const (
	MOUSE_LEFT   MouseButton = 1
	MOUSE_MIDDLE MouseButton = 2
	MOUSE_RIGHT  MouseButton = 3
	MOUSE_X1     MouseButton = 4
	MOUSE_X2     MouseButton = 5
)

func (b MouseButton) String() string {
	switch b {
	case MOUSE_LEFT:
		return "left"
	case MOUSE_MIDDLE:
		return "middle"
	case MOUSE_RIGHT:
		return "right"
	case MOUSE_X1:
		return "x1"
	case MOUSE_X2:
		return "x2"
	}
	return "unknown"
}
