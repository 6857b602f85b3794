// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsblock

import "sort"

// Blocks owns every *Block of one script for the lifetime of a
// control-flow pass, in address-sorted order.
type Blocks struct {
	order  []*Block
	byAddr map[int64]*Block
}

// NewBlocks builds a Blocks collection from an unordered set of blocks.
// Parent/Child edges must already be wired by the caller (ncsblock.Build,
// or a test fixture).
func NewBlocks(blocks []*Block) *Blocks {
	bs := &Blocks{
		order:  append([]*Block(nil), blocks...),
		byAddr: make(map[int64]*Block, len(blocks)),
	}
	sort.Slice(bs.order, func(i, j int) bool { return bs.order[i].Address < bs.order[j].Address })
	for _, b := range bs.order {
		bs.byAddr[b.Address] = b
	}
	return bs
}

// All returns every block, in address order. The slice must not be
// mutated by the caller.
func (bs *Blocks) All() []*Block {
	return bs.order
}

// Len returns the number of blocks.
func (bs *Blocks) Len() int {
	return len(bs.order)
}

// ByAddress looks up a block by its address.
func (bs *Blocks) ByAddress(addr int64) (*Block, bool) {
	b, ok := bs.byAddr[addr]
	return b, ok
}

// GetNextBlock returns the block immediately following b in address order
// — the collection's own successor, not a graph edge — or ok=false if b
// is the last block.
func (bs *Blocks) GetNextBlock(b *Block) (next *Block, ok bool) {
	for i, cur := range bs.order {
		if cur == b {
			if i+1 < len(bs.order) {
				return bs.order[i+1], true
			}
			return nil, false
		}
	}
	return nil, false
}

// HasLinearPath reports whether b is reachable from a by following only
// unconditional successor edges (spec.md §4.1).
func (bs *Blocks) HasLinearPath(a, b *Block) bool {
	seen := make(map[*Block]bool)
	cur := a
	for {
		if cur == b {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
		if !cur.HasUnconditionalChildren() {
			return false
		}
		cur = cur.Children[0]
	}
}
