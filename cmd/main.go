package main

import (
	"os"
	"strings"

	"chessclock/internal/core/model"
	"chessclock/internal/device/buzzer"
	"chessclock/internal/logging"
	"chessclock/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const appName = "ChessClock"

func main() {
	logging.Setup("info", os.Stderr)

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}
	logLevel := getEnv("CHESSCLOCK_LOG_LEVEL", "info")
	logging.Setup(logLevel, os.Stderr)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Warn().Err(err).Msg("using default settings")
	}

	switch frontend := strings.ToLower(getEnv("CHESSCLOCK_FRONTEND", "desktop")); frontend {
	case "terminal":
		runTerminal(settings, logLevel)
	case "desktop":
		runDesktop(settings)
	default:
		log.Fatal().Str("frontend", frontend).Msg("unknown front-end, use desktop or terminal")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// openSpeaker returns the audio alarm, or nil when sound is off or unavailable.
func openSpeaker(settings model.Settings) *buzzer.Speaker {
	if !settings.SoundEnabled {
		return nil
	}
	speaker, err := buzzer.NewSpeaker(buzzer.DefaultSampleRate, buzzer.DefaultFrequency)
	if err != nil {
		log.Warn().Err(err).Msg("audio alarm unavailable")
		return nil
	}
	return speaker
}
