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

// Package errutil provides the Log/Must call-site helpers used at the
// CLI boundary, adapted from cogentcore.org/core/base/errors. The pure
// pipeline stages never import this package: they return errors, they
// do not log or panic.
package errutil

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs err if non-nil and returns it unchanged, for call sites that
// want to continue past a failure after recording it.
//
//	errutil.Log(writeResult(r))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 logs err if non-nil and returns v regardless.
//
//	path := errutil.Log1(loadPath(name))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Must panics if err is non-nil, for invariants the CLI treats as fatal
// misconfiguration rather than a per-path failure.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v if err is nil, and panics otherwise.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func callerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
