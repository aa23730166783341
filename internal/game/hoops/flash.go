package hoops

import "github.com/chewxy/math32"

// FlashState is the blinking win indicator.
type FlashState struct {
	Active bool
	Timer  float32
}

// Start restarts the flash.
func (f *FlashState) Start() {
	f.Active = true
	f.Timer = 0
}

// Advance moves the timer and ends the flash once it exceeds duration.
func (f *FlashState) Advance(dt, duration float32) {
	if !f.Active {
		return
	}
	f.Timer += dt
	if f.Timer > duration {
		f.Active = false
	}
}

// Visible reports whether the flash is in the lit half of its blink cycle.
func (f *FlashState) Visible(rate float32) bool {
	return f.Active && math32.Mod(f.Timer*rate, 2) < 1
}
