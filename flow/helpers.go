// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// isSingularBlock reports whether b consists of exactly one instruction.
func isSingularBlock(b *ncsblock.Block) bool {
	return len(b.Instructions) == 1
}

// isLoneJump reports whether b is a single-instruction JMP block with at
// least one parent reached via a conditional edge (spec.md §4.1). Such a
// block exists as a distinct block only because a conditional edge cuts
// into its position; a JMP whose only parents are unconditional is a
// straight-line thunk, not a lone jump.
func isLoneJump(b *ncsblock.Block) bool {
	if b == nil || !isSingularBlock(b) || b.Instructions[0].Op != jmpOpcode {
		return false
	}
	for _, p := range b.Parents {
		if p.HasConditionalChildren() {
			return true
		}
	}
	return false
}

// filterLoneJumps returns the subset of blocks that are lone jumps.
func filterLoneJumps(blocks []*ncsblock.Block) []*ncsblock.Block {
	var out []*ncsblock.Block
	for _, b := range blocks {
		if isLoneJump(b) {
			out = append(out, b)
		}
	}
	return out
}

// earliest returns the block with the smallest address, or nil if blocks
// is empty. Ties are impossible since addresses are unique (spec.md §4.1).
func earliest(blocks []*ncsblock.Block) *ncsblock.Block {
	var result *ncsblock.Block
	for _, b := range blocks {
		if result == nil || b.Address < result.Address {
			result = b
		}
	}
	return result
}

// latest returns the block with the largest address, or nil if blocks is
// empty.
func latest(blocks []*ncsblock.Block) *ncsblock.Block {
	var result *ncsblock.Block
	for _, b := range blocks {
		if result == nil || b.Address > result.Address {
			result = b
		}
	}
	return result
}

// pathMerge finds the merge point of two blocks b1, b2 with
// b1.Address <= b2.Address: the earliest block reachable from b1 by a
// linear path, found by walking b2's successor subtree (spec.md §4.1).
//
// The reference implementation (original_source/src/nwscript/controlflow.cpp)
// walks this subtree with no visited-set, which is exponential on a graph
// with shared successors; per spec.md §9's "findPathMerge recursion" open
// question this walk is memoized by block address without changing the
// result.
func pathMerge(blocks *ncsblock.Blocks, b1, b2 *ncsblock.Block) *ncsblock.Block {
	if b1.Address > b2.Address {
		b1, b2 = b2, b1
	}

	visited := make(map[int64]bool)
	var merges []*ncsblock.Block

	var walk func(b *ncsblock.Block)
	walk = func(b *ncsblock.Block) {
		if visited[b.Address] {
			return
		}
		visited[b.Address] = true

		if blocks.HasLinearPath(b1, b) {
			merges = append(merges, b)
			return
		}
		for _, c := range b.Children {
			walk(c)
		}
	}
	walk(b2)

	return earliest(merges)
}
