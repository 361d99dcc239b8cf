// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{level:-8s} %{module}:%{color:reset} %{message}"

// LogLevelFlag defines the verbosity of every module logger of a command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value:   "info",
}

//go:generate mockgen -source logger.go -destination logger_mock.go -package logger

// Logger is the subset of go-logging used across the analyzer.
type Logger interface {
	Critical(args ...interface{})
	Criticalf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger provides a new instance of the Logger writing to stdout.
func NewLogger(level string, module string) Logger {
	return NewLoggerTo(os.Stdout, level, module)
}

// NewLoggerTo provides a Logger for the given module writing to w.
// An unknown level falls back to INFO.
func NewLoggerTo(w io.Writer, level string, module string) Logger {
	backend := logging.NewLogBackend(w, "", 0)

	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvlBackend := logging.AddModuleLevel(fmtBackend)
	l, err := logging.LogLevel(level)
	if err != nil {
		l = logging.INFO
	}
	lvlBackend.SetLevel(l, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(lvlBackend)
	return log
}

// ParseTime splits elapsed time into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours, minutes, seconds uint32
	)
	seconds = uint32(elapsed.Round(1 * time.Second).Seconds())
	if seconds > 60 {
		minutes = seconds / 60
		seconds %= 60
	}
	if minutes > 60 {
		hours = minutes / 60
		minutes %= 60
	}
	return hours, minutes, seconds
}
