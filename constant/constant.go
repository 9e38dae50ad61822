package constant

const (
	FRAME_RATE      = 60
	PACER_SLICE_MS  = 5
	WINDOW_TITLE    = "simple"
	WINDOW_WIDTH    = 640
	WINDOW_HEIGHT   = 480
	FONT_SIZE       = 14
	FONT_FIRST_CHAR = ' '
	FONT_LAST_CHAR  = '~'
)
