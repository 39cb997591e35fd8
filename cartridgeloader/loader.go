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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/logger"
)

// Sentinal error patterns.
const (
	UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"
	EmptyFile      = "cartridgeloader: no data in %s"
)

// CopierHeaderSize is the size of the header prepended to the ROM data by
// some copier devices.
const CopierHeaderSize = 512

// Loader is used to specify the cartridge to use when creating the
// emulation.
type Loader struct {
	// filename of cartridge to load. can be a HTTP or HTTPS URL.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte

	// whether a copier header was removed from the data
	HeaderRemoved bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("%s (%s)", resp.Status, cl.Filename))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
		} else {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyFile, cl.Filename)
	}

	// remove copier header
	if len(data)%1024 == CopierHeaderSize {
		data = data[CopierHeaderSize:]
		cl.HeaderRemoved = true
		logger.Logf(logger.Info, "cartridgeloader", "removed %d byte copier header from %s", CopierHeaderSize, cl.ShortName())
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
