// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsblock

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/nwscript-tools/ncdecomp/ncs"
)

// buildProgram assembles a tiny compiled script shaped like a do-while
// loop: EQUAL;JZ (the head, testing and branching) / JMP (the lone-jump
// tail, back-edge to the head) / RETN (the loop's exit).
func buildProgram(t *testing.T) *ncs.Program {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.WriteString("NCS ")
	buf.WriteString("V1.0")
	buf.WriteByte(0x42)
	buf.WriteByte(0x03)
	binary.Write(buf, binary.BigEndian, uint32(30)) // 14-byte header + EQUAL(2) + JZ(6) + JMP(6) + RETN(2)

	buf.WriteByte(byte(ncs.OpEQUAL))
	buf.WriteByte(0x00)

	buf.WriteByte(byte(ncs.OpJZ))
	buf.WriteByte(0x00)
	binary.Write(buf, binary.BigEndian, int32(12)) // offset16 + 12 = 28 (the RETN block)

	buf.WriteByte(byte(ncs.OpJMP))
	buf.WriteByte(0x00)
	binary.Write(buf, binary.BigEndian, int32(-8)) // offset22 - 8 = 14 (the head)

	buf.WriteByte(byte(ncs.OpRETN))
	buf.WriteByte(0x00)

	p, err := ncs.Read(buf)
	if err != nil {
		t.Fatalf("ncs.Read: %v", err)
	}
	return p
}

func TestBuildSplitsAndWiresDoWhileShape(t *testing.T) {
	p := buildProgram(t)

	bs, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if bs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", bs.Len())
	}

	head, ok := bs.ByAddress(14)
	if !ok {
		t.Fatalf("no block at address 14")
	}
	tail, ok := bs.ByAddress(22)
	if !ok {
		t.Fatalf("no block at address 22")
	}
	next, ok := bs.ByAddress(28)
	if !ok {
		t.Fatalf("no block at address 28")
	}

	if len(head.Instructions) != 2 {
		t.Errorf("head has %d instructions, want 2 (EQUAL, JZ)", len(head.Instructions))
	}
	if len(tail.Instructions) != 1 || tail.Instructions[0].Op != ncs.OpJMP {
		t.Errorf("tail = %+v, want a sole JMP", tail.Instructions)
	}
	if len(next.Instructions) != 1 || next.Instructions[0].Op != ncs.OpRETN {
		t.Errorf("next = %+v, want a sole RETN", next.Instructions)
	}

	if len(head.Children) != 2 || head.Children[0] != tail || head.Children[1] != next {
		t.Fatalf("head.Children = %v, want [tail,next]", head.Children)
	}
	if len(tail.Children) != 1 || tail.Children[0] != head {
		t.Fatalf("tail.Children = %v, want [head]", tail.Children)
	}
	if len(next.Children) != 0 {
		t.Fatalf("next.Children = %v, want none: RETN is terminal", next.Children)
	}

	if head.Subroutine == nil || tail.Subroutine != head.Subroutine || next.Subroutine != head.Subroutine {
		t.Errorf("all three blocks should share one Subroutine rooted at the entry block")
	}
	if head.Subroutine.Address != 14 {
		t.Errorf("Subroutine.Address = %d, want 14", head.Subroutine.Address)
	}
}

func TestBuildEmptyProgram(t *testing.T) {
	bs, err := Build(&ncs.Program{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if bs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", bs.Len())
	}
}
