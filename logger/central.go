// This file is part of SC2Scroll.
//
// SC2Scroll is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SC2Scroll is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SC2Scroll.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the project. Log entries are
// collected, deduplicated and kept to a maximum length. Entries can be
// echoed to an io.Writer as they arrive with SetEcho(). This is how the
// -log flag in the command line frontend works.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write contents of the central logger to the io.Writer.
func Write(output io.Writer) bool {
	return central.write(output)
}

// Tail writes the last N entries to the io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho to echo new entries as they arrive. A nil writer turns echoing
// off.
func SetEcho(output io.Writer) {
	central.echo = output
}
