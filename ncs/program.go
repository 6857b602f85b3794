// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ncs reads compiled NWScript bytecode (.ncs files) produced by
// BioWare's NWScript compiler for the Aurora-family game engines.
package ncs

import (
	"bufio"
	"encoding/binary"
	"io"
)

var magic = [4]byte{'N', 'C', 'S', ' '}
var version = [4]byte{'V', '1', '.', '0'}

// programMarker precedes the 4-byte big-endian program size in the header;
// BioWare's compiler always emits opcode 0x42 with sub-opcode 0x03.
const (
	programMarkerOp    = 0x42
	programMarkerSubOp = 0x03
)

// Instr is a single decoded instruction in the flat bytecode stream.
type Instr struct {
	Offset   int // byte offset of this instruction's opcode byte
	Op       Opcode
	Type     byte          // the NWScript "instruction type" byte following the opcode
	Operands []interface{} // opcode-specific decoded operands, in stream order
}

// Program is the fully decoded instruction stream of one compiled script.
type Program struct {
	Size  int // program size in bytes, as declared by the header
	Instr []Instr
}

// Read decodes a compiled NWScript program from r.
func Read(r io.Reader) (*Program, error) {
	br := bufio.NewReader(r)

	var hdr [8]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, err
	}
	if [4]byte{hdr[0], hdr[1], hdr[2], hdr[3]} != magic {
		return nil, ErrInvalidMagic
	}
	if [4]byte{hdr[4], hdr[5], hdr[6], hdr[7]} != version {
		return nil, ErrInvalidVersion
	}

	marker, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	sub, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	if marker != programMarkerOp || sub != programMarkerSubOp {
		return nil, ErrInvalidMagic
	}

	var size uint32
	if err := binary.Read(br, binary.BigEndian, &size); err != nil {
		return nil, err
	}

	p := &Program{Size: int(size)}

	offset := 14 // 8-byte magic+version + 2-byte marker + 4-byte size, all consumed before the first instruction
	for {
		op, err := br.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if _, ok := opcodeNames[Opcode(op)]; !ok {
			return nil, InvalidOpcodeError{Offset: offset, Byte: op}
		}

		instr := Instr{Offset: offset, Op: Opcode(op)}
		offset++

		typ, err := br.ReadByte()
		if err != nil {
			return nil, wrapEOF(err, offset, 1)
		}
		instr.Type = typ
		offset++

		logger.Printf("offset=%d op=%s type=0x%02x", instr.Offset, instr.Op, typ)

		n, operands, err := decodeOperands(br, Opcode(op), typ, offset)
		if err != nil {
			return nil, err
		}
		instr.Operands = operands
		offset += n

		p.Instr = append(p.Instr, instr)
	}

	if p.Size != offset {
		return nil, ErrTruncatedProgram
	}

	return p, nil
}

// JumpTarget returns the absolute byte offset an instruction with a jump
// offset operand branches to, and ok=false if this instruction has none.
// NWScript encodes jump offsets relative to the jump instruction's own
// opcode byte, matching BioWare's own disassemblers.
func (i Instr) JumpTarget() (offset int, ok bool) {
	if !i.Op.hasJumpOffset() || len(i.Operands) == 0 {
		return 0, false
	}
	rel, ok := i.Operands[0].(int32)
	if !ok {
		return 0, false
	}
	return i.Offset + int(rel), true
}
