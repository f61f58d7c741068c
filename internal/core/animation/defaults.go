package animation

import "time"

// DefaultConfig returns a five second sweep to 360 at roughly 60 frames per second.
func DefaultConfig() Config {
	return Config{
		Target:        360,
		Duration:      5 * time.Second,
		FrameInterval: 16 * time.Millisecond,
	}
}
