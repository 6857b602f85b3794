// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsblock

import (
	"sort"

	"github.com/nwscript-tools/ncdecomp/ncs"
)

// Build decodes a Program's flat instruction stream into the addressed,
// edge-wired block graph the flow package operates on (spec.md §4.11): it
// performs the bytecode parsing, basic-block construction,
// predecessor/successor wiring, subroutine discovery, and stack analysis
// that spec.md §1 names as flow's external collaborators.
func Build(p *ncs.Program) (*Blocks, error) {
	if len(p.Instr) == 0 {
		return NewBlocks(nil), nil
	}

	byOffset := make(map[int]int, len(p.Instr)) // instr offset -> index into p.Instr
	for i, in := range p.Instr {
		byOffset[in.Offset] = i
	}

	boundaries := map[int]bool{p.Instr[0].Offset: true}
	for i, in := range p.Instr {
		switch in.Op {
		case ncs.OpJMP, ncs.OpJZ, ncs.OpJNZ, ncs.OpJSR:
			target, ok := in.JumpTarget()
			if !ok {
				continue
			}
			if _, ok := byOffset[target]; !ok {
				return nil, &BuildError{Offset: in.Offset, Reason: "jump target is not the start of any instruction"}
			}
			boundaries[target] = true
		}
		switch in.Op {
		case ncs.OpJMP, ncs.OpJZ, ncs.OpJNZ, ncs.OpRETN:
			if i+1 < len(p.Instr) {
				boundaries[p.Instr[i+1].Offset] = true
			}
		}
	}

	var starts []int
	for off := range boundaries {
		starts = append(starts, off)
	}
	sort.Ints(starts)

	depths := computeDepths(p.Instr)

	blocks := make([]*Block, 0, len(starts))
	byAddr := make(map[int64]*Block, len(starts))
	for bi, start := range starts {
		end := len(p.Instr)
		if bi+1 < len(starts) {
			end = byOffset[starts[bi+1]]
		}
		b := &Block{Address: int64(start)}
		for i := byOffset[start]; i < end; i++ {
			in := p.Instr[i]
			b.Instructions = append(b.Instructions, Instr{Offset: in.Offset, Op: in.Op, Depth: depths[in.Offset]})
		}
		blocks = append(blocks, b)
		byAddr[b.Address] = b
		logger.Printf("block address=%d instructions=%d", b.Address, len(b.Instructions))
	}

	link := func(from, to *Block) {
		from.Children = append(from.Children, to)
		to.Parents = append(to.Parents, from)
	}

	for bi, b := range blocks {
		if len(b.Instructions) == 0 {
			continue
		}
		last := b.Instructions[len(b.Instructions)-1]
		lastIdx := byOffset[last.Offset]

		fallthroughBlock := func() *Block {
			if bi+1 < len(blocks) {
				return blocks[bi+1]
			}
			return nil
		}

		switch last.Op {
		case ncs.OpJZ, ncs.OpJNZ:
			target, ok := p.Instr[lastIdx].JumpTarget()
			if !ok {
				return nil, &BuildError{Offset: last.Offset, Reason: "conditional branch has no jump offset"}
			}
			targetBlock, ok := byAddr[int64(target)]
			if !ok {
				return nil, &BuildError{Offset: last.Offset, Reason: "conditional branch target is not a block"}
			}
			if fb := fallthroughBlock(); fb != nil {
				link(b, fb)
			}
			link(b, targetBlock)

		case ncs.OpJMP:
			target, ok := p.Instr[lastIdx].JumpTarget()
			if !ok {
				return nil, &BuildError{Offset: last.Offset, Reason: "jump has no jump offset"}
			}
			targetBlock, ok := byAddr[int64(target)]
			if !ok {
				return nil, &BuildError{Offset: last.Offset, Reason: "jump target is not a block"}
			}
			link(b, targetBlock)

		case ncs.OpRETN:
			// terminal: no successors.

		default:
			// JSR and any other opcode that merely happens to end a block
			// (because something else jumps into the following
			// instruction) fall straight through to the next block.
			if fb := fallthroughBlock(); fb != nil {
				link(b, fb)
			}
		}
	}

	bs := NewBlocks(blocks)
	assignSubroutines(bs, p)
	return bs, nil
}

// computeDepths runs a single linear pass over the instruction stream
// tracking value-stack depth (spec.md §4.11 step 5), grounded on
// disasm.Disassemble's running stackDepths counter. ACTION calls are
// assumed net-neutral here: their true effect depends on the callee's
// signature, which is outside this package's per-game engine tables and is
// not modelled anywhere in this module.
func computeDepths(instrs []ncs.Instr) map[int]int {
	depths := make(map[int]int, len(instrs))
	depth := 0
	for _, in := range instrs {
		depths[in.Offset] = depth
		depth += in.Op.StackDelta()
	}
	return depths
}

// assignSubroutines discovers subroutine entry blocks — JSR targets and
// the script's first instruction (main/StartingConditional) — and walks
// each one's reachable blocks, stopping at any other entry block
// (spec.md §4.11 step 4).
func assignSubroutines(bs *Blocks, p *ncs.Program) {
	entries := map[int64]bool{int64(p.Instr[0].Offset): true}
	for _, in := range p.Instr {
		if in.Op == ncs.OpJSR {
			if target, ok := in.JumpTarget(); ok {
				if _, ok := bs.ByAddress(int64(target)); ok {
					entries[int64(target)] = true
				}
			}
		}
	}

	var sorted []int64
	for addr := range entries {
		sorted = append(sorted, addr)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, addr := range sorted {
		entry, ok := bs.ByAddress(addr)
		if !ok || entry.Subroutine != nil {
			continue
		}
		sub := &Subroutine{Address: addr}

		var stack intStack
		stack.push(addr)
		visited := make(map[int64]bool)
		for !stack.empty() {
			cur, _ := stack.pop()
			if visited[cur] {
				continue
			}
			visited[cur] = true

			b, ok := bs.ByAddress(cur)
			if !ok || b.Subroutine != nil {
				continue
			}
			if cur != addr && entries[cur] {
				continue // another subroutine's entry: do not cross into it
			}
			b.Subroutine = sub
			for _, c := range b.Children {
				stack.push(c.Address)
			}
		}
	}
}
