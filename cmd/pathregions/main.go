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

// Command pathregions reads a JSON-encoded list of pathregions.PathElement
// and prints, for each, the JSON-encoded region list Process produced. A
// path that fails is logged via slog and skipped; the program continues
// on to the remaining paths (spec 7: "the overall program may continue on
// other paths").
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/config"
	"kittycad.io/pathregions/internal/errutil"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var input, configPath string

	cmd := &cobra.Command{
		Use:   "pathregions",
		Short: "Convert filled vector paths into classified, ordered regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(input, configPath)
		},
	}
	cmd.Flags().StringVar(&input, "input", "-", "JSON file of []pathregions.PathElement, or - for stdin")
	cmd.Flags().StringVar(&configPath, "config", "pathregions.toml", "optional debug-tunable config file")
	return cmd
}

func run(input, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("pathregions: loading config: %w", err)
	}
	if err := cfg.ApplyDebugOverrides(); err != nil {
		return err
	}

	data, err := readInput(input)
	if err != nil {
		return fmt.Errorf("pathregions: reading input: %w", err)
	}

	var paths []pathregions.PathElement
	if err := json.Unmarshal(data, &paths); err != nil {
		return fmt.Errorf("pathregions: parsing input: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for i, path := range paths {
		regions, err := pathregions.Process(path)
		if err != nil {
			errutil.Log(fmt.Errorf("path %d failed, skipping: %w", i, err))
			continue
		}
		if err := enc.Encode(regions); err != nil {
			return fmt.Errorf("pathregions: writing output: %w", err)
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
