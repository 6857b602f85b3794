// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsblock

import "testing"

func link(a, b *Block) {
	a.Children = append(a.Children, b)
	b.Parents = append(b.Parents, a)
}

func TestNewBlocksOrdersByAddress(t *testing.T) {
	b30 := &Block{Address: 30}
	b10 := &Block{Address: 10}
	b20 := &Block{Address: 20}

	bs := NewBlocks([]*Block{b30, b10, b20})
	if bs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", bs.Len())
	}
	order := bs.All()
	if order[0] != b10 || order[1] != b20 || order[2] != b30 {
		t.Fatalf("All() not in address order: %v", order)
	}
}

func TestByAddress(t *testing.T) {
	b := &Block{Address: 42}
	bs := NewBlocks([]*Block{b})

	got, ok := bs.ByAddress(42)
	if !ok || got != b {
		t.Fatalf("ByAddress(42) = (%v,%v), want (b,true)", got, ok)
	}
	if _, ok := bs.ByAddress(99); ok {
		t.Errorf("ByAddress(99) should report ok=false")
	}
}

func TestGetNextBlock(t *testing.T) {
	b0 := &Block{Address: 0}
	b1 := &Block{Address: 10}
	b2 := &Block{Address: 20}
	bs := NewBlocks([]*Block{b0, b1, b2})

	next, ok := bs.GetNextBlock(b0)
	if !ok || next != b1 {
		t.Fatalf("GetNextBlock(b0) = (%v,%v), want (b1,true)", next, ok)
	}
	if _, ok := bs.GetNextBlock(b2); ok {
		t.Errorf("GetNextBlock(b2) should report ok=false: b2 is the last block")
	}
}

func TestHasLinearPath(t *testing.T) {
	a := &Block{Address: 0}
	mid := &Block{Address: 10}
	b := &Block{Address: 20}
	link(a, mid)
	link(mid, b)

	bs := NewBlocks([]*Block{a, mid, b})
	if !bs.HasLinearPath(a, b) {
		t.Errorf("a should linearly reach b through mid")
	}

	branch := &Block{Address: 30}
	other := &Block{Address: 40}
	branch.Children = []*Block{b, other}
	if bs.HasLinearPath(branch, b) {
		t.Errorf("a conditional block has no linear path to either child")
	}
}

func TestHasLinearPathCycle(t *testing.T) {
	a := &Block{Address: 0}
	b := &Block{Address: 10}
	link(a, b)
	link(b, a)

	bs := NewBlocks([]*Block{a, b})
	unreachable := &Block{Address: 20}
	if bs.HasLinearPath(a, unreachable) {
		t.Errorf("a cycle must terminate without reaching an unrelated block")
	}
}
