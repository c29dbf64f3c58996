// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logger

import (
	"os"

	logging "github.com/op/go-logging"
)

const logColorFormat = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"

// InitConsoleLog routes all logging to stderr at the given level, so
// that stdout stays reserved for simulation results.
func InitConsoleLog(levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return err
	}
	stderr := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stderr, "", 0),
			logging.MustStringFormatter(logColorFormat),
		),
	)
	stderr.SetLevel(level, "")
	logging.SetBackend(stderr)
	return nil
}
