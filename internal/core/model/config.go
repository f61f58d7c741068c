package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownColorMode indicates a color mode index or name outside the palette.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode selects the gradient used for the arc and the label.
type ColorMode int

const (
	ColorBlue ColorMode = iota
	ColorRed
	ColorGreen
)

var colorModeNames = [...]string{"blue", "red", "green"}

// String returns the lower-case mode name.
func (mode ColorMode) String() string {
	if mode < ColorBlue || mode > ColorGreen {
		return fmt.Sprintf("ColorMode(%d)", int(mode))
	}
	return colorModeNames[mode]
}

// Next cycles BLUE -> RED -> GREEN -> BLUE.
func (mode ColorMode) Next() ColorMode {
	switch mode {
	case ColorBlue:
		return ColorRed
	case ColorRed:
		return ColorGreen
	default:
		return ColorBlue
	}
}

// ColorModeFromIndex converts a declaration-order index into a ColorMode.
func ColorModeFromIndex(index int) (ColorMode, error) {
	if index < int(ColorBlue) || index > int(ColorGreen) {
		return ColorBlue, fmt.Errorf("%w: index %d", ErrUnknownColorMode, index)
	}
	return ColorMode(index), nil
}

// ParseColorMode accepts a mode name, case-insensitive.
func ParseColorMode(name string) (ColorMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for index, candidate := range colorModeNames {
		if candidate == normalized {
			return ColorMode(index), nil
		}
	}
	return ColorBlue, fmt.Errorf("%w: %q", ErrUnknownColorMode, name)
}

// RingConfig contains construction-time values for a progress ring.
type RingConfig struct {
	// Progress is the initial sweep in degrees.
	Progress float32
	// TextSize is the label size in density-independent units.
	TextSize          float32
	ColorMode         ColorMode
	AnimationDuration time.Duration
	// Density converts density-independent units to pixels. Zero means 1.
	Density float32
}

// DefaultRingConfig returns the defaults of a freshly constructed ring.
func DefaultRingConfig() RingConfig {
	return RingConfig{
		Progress:          160,
		TextSize:          70,
		ColorMode:         ColorBlue,
		AnimationDuration: 5 * time.Second,
		Density:           1,
	}
}

// Dp converts density-independent units to pixels.
func (config RingConfig) Dp(value float32) float32 {
	if config.Density <= 0 {
		return value
	}
	return value * config.Density
}
