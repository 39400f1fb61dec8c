package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/escapecastle/internal/typewriter"
)

// Fixed hold times.
const (
	WelcomeDwell = 3000 * time.Millisecond
	CombatDwell  = 2000 * time.Millisecond
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// FPS is the frame rate of the game loop.
	FPS int

	// TypingDelay is the time between revealed log characters.
	TypingDelay time.Duration

	// NarrationDwell holds a passage's result on screen after it finishes
	// typing. Zero offers the next junction on the following frame.
	NarrationDwell time.Duration

	// VariationsFile, if set, replaces the embedded junction variants.
	VariationsFile string
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		FPS:            60,
		TypingDelay: typewriter.DefaultDelay,
	}
}

// LoadConfig reads ESCAPE_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("ESCAPE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("ESCAPE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("ESCAPE_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("ESCAPE_FPS: %w", err)
		}
		if fps <= 0 {
			return cfg, fmt.Errorf("ESCAPE_FPS: must be positive, got %d", fps)
		}
		cfg.FPS = fps
	}
	if v := os.Getenv("ESCAPE_TYPING_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("ESCAPE_TYPING_DELAY_MS: %w", err)
		}
		cfg.TypingDelay = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("ESCAPE_NARRATION_DWELL_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("ESCAPE_NARRATION_DWELL_MS: %w", err)
		}
		cfg.NarrationDwell = time.Duration(ms) * time.Millisecond
	}
	cfg.VariationsFile = os.Getenv("ESCAPE_VARIATIONS_FILE")

	return cfg, nil
}
