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

//go:build !debug

package config

import "fmt"

// ApplyDebugOverrides rejects any requested debug tunable: normal builds
// keep the core's fixed constants, per spec 5's determinism guarantee.
func (c *Config) ApplyDebugOverrides() error {
	if c.Requested() {
		return fmt.Errorf("config: debug overrides require a binary built with -tags debug")
	}
	return nil
}
