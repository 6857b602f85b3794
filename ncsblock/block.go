// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ncsblock holds the control-flow graph the flow package operates
// on: basic blocks of NWScript bytecode, linked by parent/child edges, and
// the append-only control-structure annotations flow.Analyze attaches to
// them.
package ncsblock

import "github.com/nwscript-tools/ncdecomp/ncs"

// Instr is one decoded instruction belonging to a block.
type Instr struct {
	Offset int
	Op     ncs.Opcode

	// Depth is the value-stack depth immediately before this instruction
	// executes, as computed by Build's stack analysis (spec.md §4.11 step
	// 5). Unset (zero) for instructions built outside of Build, e.g. in
	// tests that hand-wire a Block directly.
	Depth int
}

// Subroutine identifies the entry block of one script subroutine. Its
// Address equals the Address of that entry block (spec.md §3).
type Subroutine struct {
	Address int64
}

// Block is a maximal straight-line run of instructions with a single entry
// and a single exit. Addresses are the byte offset of the block's first
// instruction and are unique and monotonic within a script.
//
// Parents and Children are relations only, never ownership: the owning
// Blocks collection is the sole owner of every *Block for the lifetime of
// a control-flow pass.
type Block struct {
	Address      int64
	Instructions []Instr

	Parents  []*Block
	Children []*Block

	Subroutine *Subroutine

	// Controls is the append-only list of control-structure memberships
	// this block has been annotated with. Only flow.Analyze's detectors
	// append to it.
	Controls []Control
}

// HasMainControl reports whether b already bears a primary control tag —
// a loop Head/Tail/Next or an if Cond/True/Else/Next — per spec.md §4.1.
// Break, Continue, and Return are secondary and do not count.
func (b *Block) HasMainControl() bool {
	for _, c := range b.Controls {
		if c.Tag.isPrimary() {
			return true
		}
	}
	return false
}

// IsControl reports whether b bears a membership of the given tag.
func (b *Block) IsControl(tag ControlTag) bool {
	for _, c := range b.Controls {
		if c.Tag == tag {
			return true
		}
	}
	return false
}

// IsLoopNext reports whether b is the Next block of some loop.
func (b *Block) IsLoopNext() bool {
	return b.IsControl(DoWhileNext) || b.IsControl(WhileNext)
}

// IsLoopTail reports whether b is the Tail block of some loop.
func (b *Block) IsLoopTail() bool {
	return b.IsControl(DoWhileTail) || b.IsControl(WhileTail)
}

// GetLoop resolves the (head, tail, next) triple of the loop b is the
// Head, Tail, or Next of. ok is false if b bears none of those tags.
func (b *Block) GetLoop() (head, tail, next *Block, ok bool) {
	for _, c := range b.Controls {
		switch c.Tag {
		case DoWhileHead, DoWhileTail, DoWhileNext,
			WhileHead, WhileTail, WhileNext:
			return c.Head, c.Tail, c.Next, true
		}
	}
	return nil, nil, nil, false
}

// GetLaterParents returns the subset of b's parents with a greater
// address than b — i.e. back-edge sources.
func (b *Block) GetLaterParents() []*Block {
	var later []*Block
	for _, p := range b.Parents {
		if p.Address > b.Address {
			later = append(later, p)
		}
	}
	return later
}

// HasConditionalChildren reports whether b ends in a two-way conditional
// branch (its two children are chosen by a JZ/JNZ).
func (b *Block) HasConditionalChildren() bool {
	if len(b.Instructions) == 0 || len(b.Children) != 2 {
		return false
	}
	op := b.Instructions[len(b.Instructions)-1].Op
	return op == ncs.OpJZ || op == ncs.OpJNZ
}

// HasUnconditionalChildren reports whether b has exactly one successor,
// reached by fall-through or an unconditional JMP.
func (b *Block) HasUnconditionalChildren() bool {
	return len(b.Children) == 1
}
