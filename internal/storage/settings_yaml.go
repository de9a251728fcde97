package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chessclock/internal/core/model"
	"chessclock/internal/platform"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	AlarmDurationMs int    `yaml:"alarm_duration_ms"`
	SoundEnabled    *bool  `yaml:"sound_enabled,omitempty"`
	Player1Key      string `yaml:"player1_key"`
	Player2Key      string `yaml:"player2_key"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads preferences from an explicit path.
func LoadSettingsFile(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
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
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes preferences to an explicit path.
func SaveSettingsFile(configPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	soundEnabled := settings.SoundEnabled
	fileData := yamlSettings{
		AlarmDurationMs: int(settings.AlarmDuration / time.Millisecond),
		SoundEnabled:    &soundEnabled,
		Player1Key:      string(settings.Player1Key),
		Player2Key:      string(settings.Player2Key),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	alarm := time.Duration(fileData.AlarmDurationMs) * time.Millisecond
	if alarm > 0 && alarm <= model.MaxAlarmDuration {
		settings.AlarmDuration = alarm
	}

	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}

	player1, ok1 := parseKey(fileData.Player1Key)
	player2, ok2 := parseKey(fileData.Player2Key)
	if ok1 && ok2 && model.ValidSwitchKeys(player1, player2) {
		settings.Player1Key = player1
		settings.Player2Key = player2
	}
}

func parseKey(value string) (rune, bool) {
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}
