package gamedata

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef defines an enemy archetype loaded from JSON.
type EnemyDef struct {
	Name        string `json:"name"`        // Display name, including its article (e.g., "an evil witch")
	Color       string `json:"color"`       // Hex color code for the art panel
	HP          int    `json:"hp"`          // Base hit points, scaled by difficulty at spawn
	Attack      int    `json:"attack"`      // Center of the counter-attack damage roll
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// ArtKey returns the normalized slug used to look up the enemy's art.
func (e *EnemyDef) ArtKey() string {
	return Slug(e.Name)
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// Slug normalizes a display name into an asset key: lower case with spaces
// replaced by underscores.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
