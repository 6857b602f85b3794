// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncs

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// header writes a valid 8-byte magic+version pair followed by the
// program-size marker and a 4-byte big-endian size.
func header(t *testing.T, size uint32) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.Write(magic[:])
	buf.Write(version[:])
	buf.WriteByte(programMarkerOp)
	buf.WriteByte(programMarkerSubOp)
	if err := binary.Write(buf, binary.BigEndian, size); err != nil {
		t.Fatalf("binary.Write: %v", err)
	}
	return buf
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := new(bytes.Buffer)
	buf.WriteString("XXXXV1.0")
	buf.WriteByte(programMarkerOp)
	buf.WriteByte(programMarkerSubOp)
	binary.Write(buf, binary.BigEndian, uint32(0))

	_, err := Read(buf)
	if err != ErrInvalidMagic {
		t.Fatalf("Read() err = %v, want ErrInvalidMagic", err)
	}
}

func TestReadRejectsBadVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	buf.WriteString("NCS X.XX")
	buf.WriteByte(programMarkerOp)
	buf.WriteByte(programMarkerSubOp)
	binary.Write(buf, binary.BigEndian, uint32(0))

	_, err := Read(buf)
	if err != ErrInvalidVersion {
		t.Fatalf("Read() err = %v, want ErrInvalidVersion", err)
	}
}

func TestReadSimpleProgram(t *testing.T) {
	buf := header(t, 18) // 14-byte header + RSADD(2) + RETN(2)
	buf.WriteByte(byte(OpRSADD))
	buf.WriteByte(typeInt)
	buf.WriteByte(byte(OpRETN))
	buf.WriteByte(0x00)

	p, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.Size != 18 {
		t.Errorf("Size = %d, want 18", p.Size)
	}
	if len(p.Instr) != 2 {
		t.Fatalf("len(Instr) = %d, want 2", len(p.Instr))
	}
	if p.Instr[0].Op != OpRSADD || p.Instr[0].Offset != 14 {
		t.Errorf("Instr[0] = %+v, want Op=RSADD Offset=14", p.Instr[0])
	}
	if p.Instr[1].Op != OpRETN || p.Instr[1].Offset != 16 {
		t.Errorf("Instr[1] = %+v, want Op=RETN Offset=16", p.Instr[1])
	}
}

func TestDecodeConstOperands(t *testing.T) {
	buf := header(t, 31) // 14-byte header + int CONST(6) + string CONST(9) + RETN(2)
	buf.WriteByte(byte(OpCONST))
	buf.WriteByte(typeInt)
	binary.Write(buf, binary.BigEndian, int32(42))
	buf.WriteByte(byte(OpCONST))
	buf.WriteByte(typeString)
	binary.Write(buf, binary.BigEndian, uint16(5))
	buf.WriteString("hello")
	buf.WriteByte(byte(OpRETN))
	buf.WriteByte(0x00)

	p, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(p.Instr) != 3 {
		t.Fatalf("len(Instr) = %d, want 3", len(p.Instr))
	}
	if got := p.Instr[0].Operands[0].(int32); got != 42 {
		t.Errorf("int CONST operand = %d, want 42", got)
	}
	if got := p.Instr[1].Operands[0].(string); got != "hello" {
		t.Errorf("string CONST operand = %q, want %q", got, "hello")
	}
}

func TestReadRejectsUnknownOpcode(t *testing.T) {
	buf := header(t, 16)
	buf.WriteByte(0xfe) // not in opcodeNames
	buf.WriteByte(0x00)

	_, err := Read(buf)
	ie, ok := err.(InvalidOpcodeError)
	if !ok {
		t.Fatalf("Read() err = %v (%T), want InvalidOpcodeError", err, err)
	}
	if ie.Offset != 14 || ie.Byte != 0xfe {
		t.Errorf("InvalidOpcodeError = %+v, want Offset=14 Byte=0xfe", ie)
	}
}

func TestReadReportsUnexpectedEOF(t *testing.T) {
	buf := header(t, 0)
	buf.WriteByte(byte(OpJMP))
	buf.WriteByte(0x00)
	buf.WriteByte(0x00) // only 1 of the 4 jump-offset bytes present

	_, err := Read(buf)
	ue, ok := err.(UnexpectedEOFError)
	if !ok {
		t.Fatalf("Read() err = %v (%T), want UnexpectedEOFError", err, err)
	}
	if ue.Offset != 16 || ue.Want != 4 {
		t.Errorf("UnexpectedEOFError = %+v, want Offset=16 Want=4", ue)
	}
}

func TestReadRejectsTruncatedProgram(t *testing.T) {
	buf := header(t, 99) // declared size doesn't match the 18 bytes actually present (14-byte header + RSADD(2) + RETN(2))
	buf.WriteByte(byte(OpRSADD))
	buf.WriteByte(typeInt)
	buf.WriteByte(byte(OpRETN))
	buf.WriteByte(0x00)

	_, err := Read(buf)
	if err != ErrTruncatedProgram {
		t.Fatalf("Read() err = %v, want ErrTruncatedProgram", err)
	}
}

func TestJumpTarget(t *testing.T) {
	jmp := Instr{Offset: 100, Op: OpJMP, Operands: []interface{}{int32(-20)}}
	if off, ok := jmp.JumpTarget(); !ok || off != 80 {
		t.Errorf("JumpTarget() = (%d,%v), want (80,true)", off, ok)
	}

	nop := Instr{Offset: 100, Op: OpNOP}
	if _, ok := nop.JumpTarget(); ok {
		t.Errorf("JumpTarget() on a non-jump opcode should report ok=false")
	}
}
