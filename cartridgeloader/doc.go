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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated machine.
//
// The Loader type is created with NewLoader(). The data is loaded with the
// Load() function. The filename can be a path to a local file or a HTTP/HTTPS
// URL.
//
// Many ROM dumps were made with copier devices that prepend a 512 byte header
// to the ROM data. The header is detected by the size of the file and is
// removed when the data is loaded. The Data field only ever contains the ROM
// image proper.
//
// The Hash field can be set before loading to verify the data. After loading
// it contains the SHA1 hash of the ROM image.
package cartridgeloader
