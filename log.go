package main

import (
	"io"

	"github.com/op/go-logging"
)

const _logFormat = "%{color}%{time:15:04:05.000} [%{level:.4s}]%{color:reset} %{message}"

var log = logging.MustGetLogger("aoc2022")

// initLog sends log output to w, filtered at the named level.
func initLog(w io.Writer, levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return err
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(_logFormat),
		),
	)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	return nil
}
