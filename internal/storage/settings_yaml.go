package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"progressring/internal/core/model"
	"progressring/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	AnimationDurationMs int64   `yaml:"animation_duration_ms"`
	TextSize            float32 `yaml:"text_size"`
	Progress            float32 `yaml:"progress"`
	ColorMode           string  `yaml:"color_mode"`
}

// SettingsPath returns the settings file location inside dir.
// An empty dir resolves to the user config directory of appName.
func SettingsPath(dir, appName string) (string, error) {
	if dir != "" {
		return filepath.Join(dir, settingsFileName), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		AnimationDurationMs: settings.AnimationDuration.Milliseconds(),
		TextSize:            settings.TextSize,
		Progress:            settings.Progress,
		ColorMode:           settings.ColorMode.String(),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.AnimationDurationMs > 0 {
		settings.AnimationDuration = time.Duration(fileData.AnimationDurationMs) * time.Millisecond
	}
	if fileData.TextSize > 0 {
		settings.TextSize = fileData.TextSize
	}
	if fileData.Progress >= 0 && fileData.Progress <= 360 {
		settings.Progress = fileData.Progress
	}
	if mode, err := model.ParseColorMode(fileData.ColorMode); err == nil {
		settings.ColorMode = mode
	}
}
