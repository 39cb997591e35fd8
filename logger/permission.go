// This file is part of GopherSNES.
//
// GopherSNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSNES.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"

	"github.com/jetsetilly/gophersnes/curated"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries. Good for controlling when or if
// log entries are to be made
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed. A good default to
// use if a log entry should always be made. Entries made with Allow are
// recorded at the Info level but are not subject to the minimum level.
var Allow Permission = allow{}

// Level is the severity of a log entry. Level implements the Permission
// interface and can be used directly in calls to Log() and Logf().
type Level int

// List of valid Level values.
const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
)

// AllowLogging implements the Permission interface. Whether the entry is
// actually made depends on the minimum level of the logger.
func (l Level) AllowLogging() bool {
	return true
}

func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

// UnknownLevel is returned by ParseLevel() when the string does not name a
// level.
const UnknownLevel = "logger: unknown level (%s)"

// ParseLevel converts a level name to a Level value. The comparison is not
// case sensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return Trace, nil
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	}
	return Debug, curated.Errorf(UnknownLevel, s)
}

// levelOf returns the level implied by the permission. Permissions that are
// not levels (including Allow) are treated as Info.
func levelOf(perm Permission) (Level, bool) {
	if l, ok := perm.(Level); ok {
		return l, true
	}
	return Info, false
}
