// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the optional pathregions.toml the CLI accepts for
// experimentation. The pipeline's own constants (spec 6) are fixed; this
// only surfaces a debug-only override path, rejected outside a debug
// build, so the core's determinism guarantee (spec 5) holds for normal
// operation.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level pathregions.toml shape.
type Config struct {
	Debug DebugTunables `toml:"debug"`
}

// DebugTunables are overrides for values the core otherwise fixes as
// constants. A binary built with -tags debug accepts them and logs them;
// any other build rejects them (see ApplyDebugOverrides). The pipeline
// itself never reads them, so they do not change its constants.
type DebugTunables struct {
	IntersectionSampleCount *int     `toml:"intersection_sample_count"`
	EpsilonOverride         *float64 `toml:"epsilon_override"`
}

// Load reads and parses a pathregions.toml file. A missing file is not an
// error: it returns a zero Config, since every field is optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Requested reports whether cfg asks for any debug override.
func (c *Config) Requested() bool {
	return c != nil && (c.Debug.IntersectionSampleCount != nil || c.Debug.EpsilonOverride != nil)
}
