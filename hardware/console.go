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

package hardware

import (
	"context"
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersnes/cartridgeloader"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/environment"
	"github.com/jetsetilly/gophersnes/hardware/cpu"
	"github.com/jetsetilly/gophersnes/hardware/memory"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersnes/logger"
	"golang.org/x/sync/errgroup"
)

// UnexpectedTermination is returned by Run() when the CPU goroutine ended
// without error and without having been asked to stop.
const UnexpectedTermination = "hardware: cpu terminated unexpectedly"

// Console is the main container for the emulated components.
type Console struct {
	Env  *environment.Environment
	Cart *cartridge.Cartridge
	Info cartridge.Info
	Mem  *memory.Memory
	CPU  *cpu.CPU
}

// NewConsole creates a new Console and everything associated with the
// hardware. The cartridge loader will be loaded if it has not been already.
// The memory model is LoMem.
func NewConsole(env *environment.Environment, cartload cartridgeloader.Loader) (*Console, error) {
	return NewConsoleWithModel(env, cartload, memorymap.NewLoMem())
}

// NewConsoleWithModel is the same as NewConsole but with the memory model
// specified by the caller.
func NewConsoleWithModel(env *environment.Environment, cartload cartridgeloader.Loader, model memorymap.Model) (*Console, error) {
	logger.Logf(logger.Debug, "console", "environment: %v", env)

	if !cartridgeloader.IsRecognisedExtension(cartload.Filename) {
		logger.Logf(logger.Warn, "console", "unrecognised file extension (%s)", cartload.Filename)
	}

	err := cartload.Load()
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	con := &Console{Env: env}

	con.Cart = cartridge.NewCartridge(cartload)
	logger.Logf(logger.Info, "console", "cartridge: %v (%d bytes)", con.Cart, con.Cart.Size())

	con.Info, err = cartridge.NewInfo(con.Cart)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}
	logger.Logf(logger.Info, "console", "header: %v", con.Info)

	con.Mem = memory.NewMemory(model, con.Cart)
	logger.Logf(logger.Debug, "console", "memory model: %s", model.Label())
	for _, l := range strings.Split(strings.TrimSpace(memorymap.Summary(model, 0)), "\n") {
		logger.Log(logger.Debug, "console", l)
	}

	con.CPU = cpu.NewCPU(con.Mem, con.Info.ResetVector)

	return con, nil
}

func (con *Console) String() string {
	return fmt.Sprintf("%s [%v] %v", con.Cart, con.Info, con.CPU)
}

// Stop requests that the CPU stops at the next instruction boundary. It is
// safe to call from any goroutine.
func (con *Console) Stop() {
	con.CPU.Stop()
}

// Run the CPU until it is stopped or until an error occurs. The CPU is stopped
// when the context is cancelled. A requested stop returns nil.
func (con *Console) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)

		if err := con.CPU.Run(); err != nil {
			return curated.Errorf("hardware: %v", err)
		}
		if !con.CPU.StopRequested() {
			return curated.Errorf(UnexpectedTermination)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			con.CPU.Stop()
			logger.Log(logger.Debug, "console", "stop requested")
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
