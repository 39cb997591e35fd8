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

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gophersnes/logger"
)

// Address the server listens on.
const Address = "localhost:12650"

const url = "/debug/statsview"

// URL returns the location of the statistics page.
func URL() string {
	return Address + url
}

// Launch a new goroutine running the statsview. The returned function stops
// the server.
func Launch() (stop func()) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Info, "statsview", "stats server available at %s", URL())

	return func() {
		mgr.Stop()
		logger.Log(logger.Debug, "statsview", "stopped")
	}
}
