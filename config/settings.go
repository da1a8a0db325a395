// Package config loads runtime settings for the sphervoxel driver
// binaries from a JSON file, falling back to in-code defaults when the
// file is absent — the same shape as the teacher's own settings
// loader, generalized from planet-simulation knobs (icosphere level,
// GPU backend) to grid/traversal/server knobs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings is the top-level configuration document.
type Settings struct {
	Grid   GridSettings   `json:"grid"`
	Server ServerSettings `json:"server"`
}

// GridSettings controls the default grid a driver binary builds when
// none is specified on the command line.
type GridSettings struct {
	RadiusMin float64 `json:"radiusMin"`
	RadiusMax float64 `json:"radiusMax"`
	Radial    int     `json:"radial"`
	Polar     int     `json:"polar"`
	Azimuthal int     `json:"azimuthal"`
}

// ServerSettings controls cmd/sphereserver.
type ServerSettings struct {
	Port             int      `json:"port"`
	UpdateIntervalMs int      `json:"updateIntervalMs"`
	AllowedOrigins   []string `json:"allowedOrigins"`
}

// Defaults returns the built-in settings used when no file is found.
func Defaults() Settings {
	return Settings{
		Grid: GridSettings{
			RadiusMin: 0,
			RadiusMax: 1,
			Radial:    16,
			Polar:     32,
			Azimuthal: 32,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 100,
			AllowedOrigins:   []string{"http://localhost:8080"},
		},
	}
}

// Load reads settings from path, overlaying them on top of Defaults.
// A missing file is not an error: it just means "use the defaults",
// mirroring the teacher's settings loader behavior for settings.json.
func Load(path string) (Settings, error) {
	settings := Defaults()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return Settings{}, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return Settings{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return settings, nil
}
