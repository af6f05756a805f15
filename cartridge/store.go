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

package cartridge

import (
	"fmt"

	"github.com/msxtools/sc2scroll/tiling"
)

// BankSize is the window size of the ASCII16 mapper.
const BankSize = 0x4000

// MaxBanks is the limit of the ASCII16 page register, giving a 4MB ROM.
const MaxBanks = 256

// BlocksPerBank for the standard bank size.
const BlocksPerBank = BankSize / tiling.BlockSize

// FillByte fills every unused byte of the cartridge: layout padding, the
// empty remainder of the boot bank, the tail of the BGM bank.
const FillByte = 0xff

// BlockStore is the banked backing store of the cartridge. The arena always
// spans a whole number of banks.
type BlockStore struct {
	arena    []byte
	bankSize int
}

// NewBlockStore wraps existing bytes, typically a whole ROM file. The data
// length must be a multiple of the bank size.
func NewBlockStore(data []byte, bankSize int) *BlockStore {
	if bankSize <= 0 || len(data)%bankSize != 0 {
		panic(fmt.Sprintf("block store of %d bytes is not a whole number of %d byte banks", len(data), bankSize))
	}
	return &BlockStore{arena: data, bankSize: bankSize}
}

// BankSize of the store's window.
func (st *BlockStore) BankSize() int {
	return st.bankSize
}

// NumBanks in the store.
func (st *BlockStore) NumBanks() int {
	return len(st.arena) / st.bankSize
}

// Bank returns the data of a single bank.
func (st *BlockStore) Bank(bank int) []byte {
	o := bank * st.bankSize
	return st.arena[o : o+st.bankSize]
}

// Bytes of the whole store.
func (st *BlockStore) Bytes() []byte {
	return st.arena
}

func (st *BlockStore) String() string {
	return fmt.Sprintf("%d banks of %d bytes (%d blocks per bank)",
		st.NumBanks(), st.bankSize, st.bankSize/tiling.BlockSize)
}

// Window is the runtime's view of a BlockStore: one bank visible at a time,
// changed with the page register. All data reads go through a Window; raw
// arena offsets never leave this file.
type Window struct {
	store *BlockStore

	// the bank currently mapped into the window
	bank int
}

// NewWindow creates a Window onto the store with bank 0 selected, which is
// the state of the ASCII16 page register after reset.
func (st *BlockStore) NewWindow() *Window {
	return &Window{store: st}
}

// Bank currently mapped into the window.
func (wdw *Window) Bank() int {
	return wdw.bank
}

// BankSize of the window.
func (wdw *Window) BankSize() int {
	return wdw.store.bankSize
}

// Select a bank. This is the page register write.
func (wdw *Window) Select(bank int) {
	if bank < 0 || bank >= wdw.store.NumBanks() {
		panic(fmt.Sprintf("bank %d selected (store has %d banks)", bank, wdw.store.NumBanks()))
	}
	wdw.bank = bank
}

// Read a byte at an offset within the window. Offsets outside the window
// are a contract violation, not an addressing mode.
func (wdw *Window) Read(offset int) uint8 {
	if offset < 0 || offset >= wdw.store.bankSize {
		panic(fmt.Sprintf("window read at offset %#x (window is %#x bytes)", offset, wdw.store.bankSize))
	}
	return wdw.store.arena[wdw.bank*wdw.store.bankSize+offset]
}
