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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides support for program modes (eg. BUILD, PLAY, INFO)
// with options for each mode and a mechanism for chaining modes.
//
// The basic pattern of usage:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("BUILD", "PLAY", "INFO")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	...
//	}
//
// Inside each mode handler, NewMode() is called again, flags for the mode
// are added and Parse() is called a second time. Arguments that are not
// flags and not sub-modes are available with RemainingArgs() and GetArg().
package modalflag
