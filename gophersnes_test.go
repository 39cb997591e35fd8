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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophersnes/environment"
	"github.com/jetsetilly/gophersnes/test"
)

func noEnv(string) (string, bool) {
	return "", false
}

func withEnv(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

// testROM writes a 32k image with the title "TESTGAME" and a reset vector of
// $8000. the program starts at the beginning of the image.
func testROM(t *testing.T, program ...uint8) string {
	t.Helper()

	data := make([]byte, 0x8000)
	copy(data, program)
	copy(data[0x7fc0:], "TESTGAME             ")
	data[0x7ffc] = 0x00
	data[0x7ffd] = 0x80

	fn := filepath.Join(t.TempDir(), "test.sfc")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestMissingArgument(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{}, tw, noEnv), exitConfig)
	test.ExpectSuccess(t, tw.Contains("Usage:"), tw.String())

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"info"}, tw, noEnv), exitConfig)
	test.ExpectSuccess(t, tw.Contains("Usage: for INFO mode"), tw.String())
}

func TestCommandLineErrors(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, tw, noEnv), exitOK)

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"-verbose", "game.sfc"}, tw, noEnv), exitConfig)
	test.ExpectSuccess(t, tw.Contains("* error:"))

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"game.sfc", "other.sfc"}, tw, noEnv), exitConfig)
	test.ExpectSuccess(t, tw.Contains("Usage:"))
}

func TestConfigurationErrors(t *testing.T) {
	tw := &test.CompareWriter{}
	lookup := withEnv(map[string]string{environment.LogLevel: "loud"})
	test.ExpectEquality(t, launch(context.Background(), []string{testROM(t)}, tw, lookup), exitConfig)

	tw.Clear()
	missing := filepath.Join(t.TempDir(), "missing.sfc")
	test.ExpectEquality(t, launch(context.Background(), []string{missing}, tw, noEnv), exitConfig)
	test.ExpectSuccess(t, tw.Contains("* error:"))
}

func TestInfo(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"INFO", testROM(t)}, tw, noEnv), exitOK)
	test.ExpectSuccess(t, tw.Contains(`title:  "TESTGAME             "`), tw.String())
	test.ExpectSuccess(t, tw.Contains("reset:  $00:8000"), tw.String())
	test.ExpectSuccess(t, tw.Contains("model:  LoMem"), tw.String())
	test.ExpectSuccess(t, tw.Contains("$00:8000 -> $00:FFFF\tCartridge"), tw.String())
}

func TestRunToFault(t *testing.T) {
	tw := &test.CompareWriter{}
	fn := testROM(t,
		0x18,       // CLC
		0xfb,       // XCE
		0xc2, 0x30, // REP #$30
		0xff, // not an opcode
	)

	dot := filepath.Join(t.TempDir(), "cpu.dot")
	lookup := withEnv(map[string]string{
		environment.LogLevel: "error",
		environment.Memviz:   dot,
	})

	test.ExpectEquality(t, launch(context.Background(), []string{fn}, tw, lookup), exitFatal)
	test.ExpectSuccess(t, tw.Contains("unknown opcode"), tw.String())

	b, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestFormatError(t *testing.T) {
	tw := &test.CompareWriter{}

	fn := filepath.Join(t.TempDir(), "short.sfc")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 0x1000), 0o600))

	test.ExpectEquality(t, launch(context.Background(), []string{fn}, tw, noEnv), exitFatal)
}

func TestDisasm(t *testing.T) {
	tw := &test.CompareWriter{}
	fn := testROM(t,
		0xc2, 0x30, // REP #$30
		0x5b, // TCD
		0xff, // not an opcode
	)
	test.ExpectEquality(t, launch(context.Background(), []string{"disasm", fn}, tw, noEnv), exitOK)
	test.ExpectSuccess(t, tw.Contains("$00:8000 REP #$30"), tw.String())
	test.ExpectSuccess(t, tw.Contains("$00:8002 TCD"), tw.String())
	test.ExpectSuccess(t, tw.Contains("halted: cpu: unknown opcode (0xff) at $00:8003"), tw.String())
}
