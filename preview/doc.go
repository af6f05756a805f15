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

// Package preview is an SDL window that plays a scroll cartridge the way
// the target machine would: sixty frames a second, page register banking
// and all. It is a proofing tool, not an emulator: there is no Z80 and no
// VDP timing, just the picture data going through the same sub-row
// pipeline the machine's interrupt handler performs.
//
// Controls: cursor up/down scroll while held, space or cursor right is the
// next image, cursor left the previous one, escape quits.
package preview
