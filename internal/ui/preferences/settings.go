package preferences

import (
	"fmt"
	"time"

	"progressring/internal/core/model"
)

// Settings defines editable user preferences for the demo ring.
type Settings struct {
	AnimationDuration time.Duration
	TextSize          float32
	Progress          float32
	ColorMode         model.ColorMode
}

// DefaultSettings returns the demo defaults: a red ring that fills from zero in ten seconds.
func DefaultSettings() Settings {
	return Settings{
		AnimationDuration: 10 * time.Second,
		TextSize:          70,
		Progress:          0,
		ColorMode:         model.ColorRed,
	}
}

// RingConfig converts settings to a RingConfig.
func (settings Settings) RingConfig() model.RingConfig {
	config := model.DefaultRingConfig()
	config.AnimationDuration = settings.AnimationDuration
	config.TextSize = settings.TextSize
	config.Progress = settings.Progress
	config.ColorMode = settings.ColorMode
	return config
}

// String summarizes settings for status lines.
func (settings Settings) String() string {
	return fmt.Sprintf("%s, %v, %gdp", settings.ColorMode, settings.AnimationDuration, settings.TextSize)
}
