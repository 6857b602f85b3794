// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/nwscript-tools/ncdecomp/ncs"
	"github.com/nwscript-tools/ncdecomp/ncsblock"
)

// fixture is a small hand-wired block-graph builder for exercising the
// detectors without going through ncsblock.Build.
type fixture struct {
	blocks []*ncsblock.Block
}

func newFixture() *fixture {
	return &fixture{}
}

// block creates a new block at addr with the given trailing opcodes (the
// only opcodes that matter to this package: a final JZ/JNZ makes it
// conditional, a sole JMP makes it a lone jump, a RETN makes it a return
// block).
func (f *fixture) block(addr int64, ops ...ncs.Opcode) *ncsblock.Block {
	b := &ncsblock.Block{Address: addr}
	for i, op := range ops {
		b.Instructions = append(b.Instructions, ncsblock.Instr{Offset: int(addr) + i, Op: op})
	}
	f.blocks = append(f.blocks, b)
	return b
}

// jump wires an unconditional edge a -> b.
func (f *fixture) jump(a, b *ncsblock.Block) {
	a.Children = append(a.Children, b)
	b.Parents = append(b.Parents, a)
}

// cond wires a's two-way conditional edges to x and y, in that child
// order.
func (f *fixture) cond(a, x, y *ncsblock.Block) {
	a.Children = append(a.Children, x, y)
	x.Parents = append(x.Parents, a)
	y.Parents = append(y.Parents, a)
}

// sub marks every one of the given blocks as belonging to the subroutine
// entered at entry.
func (f *fixture) sub(entry *ncsblock.Block, members ...*ncsblock.Block) {
	s := &ncsblock.Subroutine{Address: entry.Address}
	entry.Subroutine = s
	for _, m := range members {
		m.Subroutine = s
	}
}

func (f *fixture) build() *ncsblock.Blocks {
	return ncsblock.NewBlocks(f.blocks)
}
