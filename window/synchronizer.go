package window

import "github.com/ushitora-anqou/simple/constant"

// Clock is the monotonic millisecond tick source a TimeSynchronizer paces
// against.
type Clock interface {
	GetTicks() uint32
	Delay(ms uint32)
}

// TimeSynchronizer caps the frame rate. A frame that overruns its budget is
// not made up for later: the next frame simply starts from the late mark.
type TimeSynchronizer struct {
	clock                    Clock
	prevTicks, ticksPerFrame uint32
}

func NewTimeSynchronizer(clock Clock, targetFPS uint32) *TimeSynchronizer {
	if targetFPS == 0 {
		targetFPS = constant.FRAME_RATE
	}
	return &TimeSynchronizer{
		clock:         clock,
		prevTicks:     clock.GetTicks(),
		ticksPerFrame: 1000 / targetFPS,
	}
}

// MaySleep blocks in short slices until a full frame has elapsed since the
// previous mark, then moves the mark to now.
func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clock.GetTicks()
	for elapsed := cur - ts.prevTicks; elapsed < ts.ticksPerFrame; elapsed = cur - ts.prevTicks {
		wait := ts.ticksPerFrame - elapsed
		if wait > constant.PACER_SLICE_MS {
			wait = constant.PACER_SLICE_MS
		}
		ts.clock.Delay(wait)
		cur = ts.clock.GetTicks()
	}
	ts.prevTicks = cur
}

func (ts *TimeSynchronizer) PrevTicks() uint32 {
	return ts.prevTicks
}

func (ts *TimeSynchronizer) TicksPerFrame() uint32 {
	return ts.ticksPerFrame
}
