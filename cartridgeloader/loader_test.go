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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophersnes/cartridgeloader"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/test"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoadFile(t *testing.T) {
	data := make([]byte, 0x8000)
	data[0] = 0x18
	fn := writeROM(t, "game.sfc", data)

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.ShortName(), "game")

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectFailure(t, cl.HeaderRemoved)
	test.ExpectEquality(t, len(cl.Data), 0x8000)
	test.ExpectEquality(t, cl.Data[0], 0x18)
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// second load is a no-op
	test.ExpectSuccess(t, cl.Load())
}

func TestCopierHeader(t *testing.T) {
	data := make([]byte, cartridgeloader.CopierHeaderSize+0x8000)
	data[cartridgeloader.CopierHeaderSize] = 0xa9
	fn := writeROM(t, "game.smc", data)

	cl := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HeaderRemoved)
	test.ExpectEquality(t, len(cl.Data), 0x8000)
	test.ExpectEquality(t, cl.Data[0], 0xa9)
}

func TestHashMismatch(t *testing.T) {
	fn := writeROM(t, "game.sfc", make([]byte, 1024))

	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestLoadErrors(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.sfc"))
	test.ExpectFailure(t, cl.Load())

	fn := writeROM(t, "empty.sfc", []byte{})
	cl = cartridgeloader.NewLoader(fn)
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.EmptyFile))

	cl = cartridgeloader.NewLoader("ftp://example.com/game.sfc")
	test.ExpectFailure(t, cl.Load())
}

func TestLoadHTTP(t *testing.T) {
	data := make([]byte, 2048)
	data[0] = 0xfb

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.sfc" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/game.sfc")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 2048)
	test.ExpectEquality(t, cl.Data[0], 0xfb)

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.sfc")
	test.ExpectFailure(t, cl.Load())
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsRecognisedExtension("game.sfc"))
	test.ExpectSuccess(t, cartridgeloader.IsRecognisedExtension("GAME.SMC"))
	test.ExpectFailure(t, cartridgeloader.IsRecognisedExtension("game.a26"))
	test.ExpectFailure(t, cartridgeloader.IsRecognisedExtension("game"))
}
