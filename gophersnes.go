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
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophersnes/cartridgeloader"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/disassembly"
	"github.com/jetsetilly/gophersnes/environment"
	"github.com/jetsetilly/gophersnes/hardware"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersnes/logger"
	"github.com/jetsetilly/gophersnes/modalflag"
	"github.com/jetsetilly/gophersnes/statsview"
	"github.com/jetsetilly/gophersnes/version"
)

// values used with os.Exit()
const (
	exitOK = 0

	// missing or unusable input. the operator can correct these
	exitConfig = 1

	// the emulation could not continue
	exitFatal = 2
)

func main() {
	// #ctrlc cancels the context. the console treats this as a request to stop
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout, os.LookupEnv)
	stop()
	os.Exit(exitVal)
}

// launch the mode indicated by the command line arguments. the return value
// is the process exit status.
func launch(ctx context.Context, args []string, output io.Writer, lookup func(string) (string, bool)) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "INFO", "DISASM")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitConfig
	}

	env, err := environment.NewEnvironment(lookup)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitConfig
	}

	logger.SetLevel(env.LogLevel)
	logger.SetEcho(output)
	defer logger.SetEcho(nil)

	logger.Log(logger.Info, "main", version.String())

	switch md.Mode() {
	case "INFO":
		return info(md, env, output)
	case "DISASM":
		return disasm(md, env, output)
	default:
		return run(ctx, md, env, output)
	}
}

// cartridge returns a loaded cartridge loader for the single argument of the
// current mode. usage is printed if the argument is missing.
func cartridge(md *modalflag.Modes, output io.Writer) (cartridgeloader.Loader, bool) {
	md.NewMode()
	md.AdditionalHelp("a single ROM file (or http/https URL) is required")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return cartridgeloader.Loader{}, false
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return cartridgeloader.Loader{}, false
	}

	if len(md.RemainingArgs()) != 1 {
		md.PrintUsage()
		return cartridgeloader.Loader{}, false
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cartload.Load(); err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return cartridgeloader.Loader{}, false
	}

	return cartload, true
}

func run(ctx context.Context, md *modalflag.Modes, env *environment.Environment, output io.Writer) int {
	cartload, ok := cartridge(md, output)
	if !ok {
		return exitConfig
	}

	if env.StatsView {
		stop := statsview.Launch()
		defer stop()
	}

	con, err := hardware.NewConsole(env, cartload)
	if err != nil {
		logger.Log(logger.Error, "main", err)
		return exitFatal
	}

	err = con.Run(ctx)

	if env.MemvizPath != "" {
		if merr := writeMemviz(con, env.MemvizPath); merr != nil {
			logger.Log(logger.Warn, "main", merr)
		}
	}

	if err != nil {
		logger.Log(logger.Error, "main", err)
		logger.Logf(logger.Error, "main", "last instruction: %v", con.CPU.LastResult)
		return exitFatal
	}

	logger.Logf(logger.Info, "main", "stopped: %v", con.CPU)

	return exitOK
}

func writeMemviz(con *hardware.Console, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()
	con.CPU.Memviz(f)
	logger.Logf(logger.Info, "main", "cpu graph written to %s", path)
	return nil
}

func info(md *modalflag.Modes, env *environment.Environment, output io.Writer) int {
	cartload, ok := cartridge(md, output)
	if !ok {
		return exitConfig
	}

	// logging would interleave with the report
	logger.SetEcho(nil)

	con, err := hardware.NewConsole(env, cartload)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitFatal
	}

	fmt.Fprintf(output, "file:   %s\n", con.Cart.Filename)
	fmt.Fprintf(output, "sha1:   %s\n", con.Cart.Hash)
	fmt.Fprintf(output, "size:   %d\n", con.Cart.Size())
	if cartload.HeaderRemoved {
		fmt.Fprintf(output, "header: copier header removed\n")
	}
	fmt.Fprintf(output, "title:  %q\n", con.Info.Title)
	fmt.Fprintf(output, "reset:  %v\n", con.Info.ResetVector)
	fmt.Fprintf(output, "model:  %s\n", con.Mem.Model().Label())
	fmt.Fprint(output, memorymap.Summary(con.Mem.Model(), 0))

	return exitOK
}

// number of instructions listed in DISASM mode
const disasmLength = 256

func disasm(md *modalflag.Modes, env *environment.Environment, output io.Writer) int {
	cartload, ok := cartridge(md, output)
	if !ok {
		return exitConfig
	}

	logger.SetEcho(nil)

	con, err := hardware.NewConsole(env, cartload)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitFatal
	}

	dsm := disassembly.FromMemory(con.Mem, con.Info.ResetVector, disasmLength)
	dsm.Write(output, disassembly.WriteAttr{ByteCode: true, Status: true})

	return exitOK
}
