/*
 * log.go, part of gosoap.
 *
 * Copyright 2023 The gosoap developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package soap

import (
	"fmt"
	"sync"
)

//Log levels, ordered by severity. The numeric values are part of the
//external contract: they are what a foreign caller registering a callback
//receives.
const (
	LogLevelError = 1 //very serious errors
	LogLevelWarn  = 2 //hazardous situations
	LogLevelInfo  = 3 //useful information
	LogLevelDebug = 4 //lower priority information
	LogLevelTrace = 5 //very low priority, often extremely verbose
)

//LogCallback receives every diagnostic event emitted by the library whose
//level is at most the enabled maximum. The message does not end in a
//newline.
type LogCallback func(level int, message string)

var logMu sync.Mutex
var logCallback LogCallback

//Info by default; trace and debug must be asked for explicitly.
var logMaxLevel = LogLevelInfo

//SetLogCallback installs cb as the process-wide diagnostic callback,
//replacing any previous one. A nil cb drops all diagnostics (the initial
//state). It is safe to call from any goroutine at any time.
func SetLogCallback(cb LogCallback) {
	logMu.Lock()
	logCallback = cb
	logMu.Unlock()
}

//SetLogLevel sets the maximum severity level that is forwarded to the
//callback. The default is LogLevelInfo; raise it to LogLevelDebug or
//LogLevelTrace during development. Levels outside [LogLevelError,
//LogLevelTrace] are clamped.
func SetLogLevel(level int) {
	if level < LogLevelError {
		level = LogLevelError
	}
	if level > LogLevelTrace {
		level = LogLevelTrace
	}
	logMu.Lock()
	logMaxLevel = level
	logMu.Unlock()
}

//Log formats a message and forwards it to the registered callback, if there
//is one and level is enabled. Diagnostics are silently dropped otherwise.
//This is also the entry point for the subpackages of this library, which
//hold no loggers of their own.
func Log(level int, format string, args ...interface{}) {
	logMu.Lock()
	cb := logCallback
	max := logMaxLevel
	logMu.Unlock()
	if cb == nil || level > max {
		return
	}
	cb(level, fmt.Sprintf(format, args...))
}
