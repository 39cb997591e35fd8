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
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gophersnes/assert"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	Level     Level
	Tag       string
	Detail    string

	// label of the goroutine that made the log request
	Worker string

	repeated int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Echo returns the entry in the long form used for echoed output.
func (e *Entry) Echo() string {
	return fmt.Sprintf("%s %-5s %s {%s} %s\n",
		e.Timestamp.Format("2006-01-02 15:04:05.000"),
		e.Level, e.Tag, e.Worker, e.Detail)
}

// Logger is a log of entries. Most of the time the package level functions
// will be used to access the central logger but a Logger can be created with
// NewLogger() if a separate log is required.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// entries will be written to echo as they are made if it is not nil
	echo io.Writer

	// minimum level for entries made with a Level permission
	level atomic.Int32
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	l := &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
	l.level.Store(int32(Debug))
	return l
}

// SetLevel sets the minimum level of entries made with a Level permission.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// GetLevel returns the current minimum level.
func (l *Logger) GetLevel() Level {
	return Level(l.level.Load())
}

// Allowed returns true if a log request with the permission would result in
// a new entry. Useful for avoiding expensive preparation of log details.
func (l *Logger) Allowed(perm Permission) bool {
	if perm == Allow {
		return true
	}
	if !perm.AllowLogging() {
		return false
	}
	if lvl, ok := levelOf(perm); ok {
		return lvl >= l.GetLevel()
	}
	return true
}

// Log adds an entry to the log. The detail argument can be of any type but
// error and fmt.Stringer types are handled explicitly.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if !l.Allowed(perm) {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	lvl, _ := levelOf(perm)
	l.log(lvl, tag, s)
}

// Logf adds a formatted entry to the log.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	if !l.Allowed(perm) {
		return
	}
	lvl, _ := levelOf(perm)
	l.log(lvl, tag, fmt.Sprintf(pattern, args...))
}

func (l *Logger) log(level Level, tag, detail string) {
	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	worker := assert.GoRoutineLabel()

	l.crit.Lock()
	defer l.crit.Unlock()

	var e *Entry
	if len(l.entries) > 0 {
		last := &l.entries[len(l.entries)-1]
		if last.Detail == detail && last.Tag == tag && last.Level == level {
			e = last
		}
	}

	if e == nil {
		l.entries = append(l.entries, Entry{
			Timestamp: time.Now(),
			Level:     level,
			Tag:       tag,
			Detail:    detail,
			Worker:    worker,
		})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
		e.Worker = worker
	}

	if l.echo != nil {
		if lw, ok := l.echo.(levelWriter); ok {
			lw.WriteLevel(e.Level, e.Echo())
		} else {
			io.WriteString(l.echo, e.Echo())
		}
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.maxEntries:]...)
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of the log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints entries to io.Writer as they are made. A nil argument turns
// echoing off. If the writer is a terminal then the output is coloured.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if output != nil && isTerminal(output) {
		l.echo = NewColorizer(output)
	} else {
		l.echo = output
	}
}
