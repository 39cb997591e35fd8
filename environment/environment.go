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

// Package environment provides the context for an emulation. The settings
// are taken from the process environment so that the command line remains
// free of flags.
package environment

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/logger"
)

// Names of the environment variables that are consulted.
const (
	LogLevel  = "GOPHERSNES_LOGLEVEL"
	StatsView = "GOPHERSNES_STATSVIEW"
	Memviz    = "GOPHERSNES_MEMVIZ"
)

// Environment is used to provide context for an emulation.
type Environment struct {
	// minimum level of log entries
	LogLevel logger.Level

	// whether to launch the runtime statistics server
	StatsView bool

	// file to write the CPU register graph to on shutdown. empty string
	// means no graph is written
	MemvizPath string
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. The lookup function is used to find the value of
// environment variables. If it is nil then os.LookupEnv() is used.
func NewEnvironment(lookup func(string) (string, bool)) (*Environment, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	env := &Environment{
		LogLevel: logger.Debug,
	}

	if v, ok := lookup(LogLevel); ok && strings.TrimSpace(v) != "" {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return nil, curated.Errorf("environment: %s: %v", LogLevel, err)
		}
		env.LogLevel = lvl
	}

	if v, ok := lookup(StatsView); ok && strings.TrimSpace(v) != "" {
		env.StatsView = true
	}

	if v, ok := lookup(Memviz); ok {
		env.MemvizPath = strings.TrimSpace(v)
	}

	return env, nil
}

func (env *Environment) String() string {
	return fmt.Sprintf("loglevel=%s statsview=%v memviz=%q", env.LogLevel, env.StatsView, env.MemvizPath)
}
