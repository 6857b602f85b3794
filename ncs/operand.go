// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncs

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// decodeOperands reads the operands following an opcode+type byte pair,
// returning the number of bytes consumed and the decoded values. offset is
// the stream position of the first operand byte, used only to annotate
// UnexpectedEOFError when the stream runs out mid-operand.
func decodeOperands(br *bufio.Reader, op Opcode, typ byte, offset int) (int, []interface{}, error) {
	switch op {
	case OpJMP, OpJSR, OpJZ, OpJNZ, OpSTORESS:
		rel, err := readI32(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 4)
		}
		return 4, []interface{}{rel}, nil

	case OpCPDOWNSP, OpCPTOPSP, OpCPDOWNBP, OpCPTOPBP:
		off, err := readI32(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 6)
		}
		size, err := readU16(br)
		if err != nil {
			return 4, nil, wrapEOF(err, offset+4, 2)
		}
		return 6, []interface{}{off, size}, nil

	case OpCONST:
		return decodeConst(br, typ, offset)

	case OpACTION:
		idx, err := readU16(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 3)
		}
		argc, err := readU8(br)
		if err != nil {
			return 2, nil, wrapEOF(err, offset+2, 1)
		}
		return 3, []interface{}{idx, argc}, nil

	case OpMOVSP, OpDECSP, OpINCSP, OpDECBP, OpINCBP:
		off, err := readI32(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 4)
		}
		return 4, []interface{}{off}, nil

	case OpDESTRUCT:
		size, err := readU16(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 6)
		}
		off, err := readI16(br)
		if err != nil {
			return 2, nil, wrapEOF(err, offset+2, 4)
		}
		szExc, err := readU16(br)
		if err != nil {
			return 4, nil, wrapEOF(err, offset+4, 2)
		}
		return 6, []interface{}{size, off, szExc}, nil

	case OpEQUAL, OpNEQUAL:
		// struct-compare variants carry an extra size; scalar variants
		// (the common case) carry none. Disambiguated by the type byte.
		if typ == typeStruct {
			size, err := readU16(br)
			if err != nil {
				return 0, nil, wrapEOF(err, offset, 2)
			}
			return 2, []interface{}{size}, nil
		}
		return 0, nil, nil

	default:
		return 0, nil, nil
	}
}

// wrapEOF turns an io.EOF/io.ErrUnexpectedEOF from an operand read into the
// documented UnexpectedEOFError, carrying the stream position and the
// number of bytes that read still needed. Other errors pass through.
func wrapEOF(err error, offset, want int) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return UnexpectedEOFError{Offset: offset, Want: want}
	}
	return err
}

const typeStruct = 0x24 // 'struct' instruction-type byte

func decodeConst(br *bufio.Reader, typ byte, offset int) (int, []interface{}, error) {
	switch typ {
	case typeInt:
		v, err := readI32(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 4)
		}
		return 4, []interface{}{v}, nil
	case typeFloat:
		v, err := readF32(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 4)
		}
		return 4, []interface{}{v}, nil
	case typeString:
		n, err := readU16(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 2)
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(br, buf); err != nil {
			return 2, nil, wrapEOF(err, offset+2, int(n))
		}
		return 2 + int(n), []interface{}{string(buf)}, nil
	case typeObject:
		v, err := readU32(br)
		if err != nil {
			return 0, nil, wrapEOF(err, offset, 4)
		}
		return 4, []interface{}{v}, nil
	default:
		return 0, nil, nil
	}
}

// Instruction-type bytes for OpCONST, matching BioWare's variable-type enum.
const (
	typeInt    = 0x03
	typeFloat  = 0x04
	typeString = 0x05
	typeObject = 0x06
)

func readU8(br *bufio.Reader) (byte, error) {
	return br.ReadByte()
}

func readU16(br *bufio.Reader) (uint16, error) {
	var v uint16
	err := binary.Read(br, binary.BigEndian, &v)
	return v, err
}

func readI16(br *bufio.Reader) (int16, error) {
	var v int16
	err := binary.Read(br, binary.BigEndian, &v)
	return v, err
}

func readU32(br *bufio.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(br, binary.BigEndian, &v)
	return v, err
}

func readI32(br *bufio.Reader) (int32, error) {
	var v int32
	err := binary.Read(br, binary.BigEndian, &v)
	return v, err
}

func readF32(br *bufio.Reader) (float32, error) {
	var bits uint32
	if err := binary.Read(br, binary.BigEndian, &bits); err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}
