// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncs

import (
	"errors"
	"fmt"
)

// ErrInvalidMagic is returned when a file does not start with the NCS
// magic number "NCS ".
var ErrInvalidMagic = errors.New("ncs: invalid magic number")

// ErrInvalidVersion is returned when a file's version field is not one
// this reader understands.
var ErrInvalidVersion = errors.New("ncs: invalid or unsupported version")

// ErrTruncatedProgram is returned when the program-size header field does
// not match the number of bytes actually read, header included.
var ErrTruncatedProgram = errors.New("ncs: truncated program")

// InvalidOpcodeError is returned when a byte in the instruction stream does
// not correspond to any known opcode.
type InvalidOpcodeError struct {
	Offset int
	Byte   byte
}

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("ncs: invalid opcode 0x%02x at offset %d", e.Byte, e.Offset)
}

// UnexpectedEOFError is returned when the instruction stream ends in the
// middle of decoding an instruction's operands.
type UnexpectedEOFError struct {
	Offset int
	Want   int
}

func (e UnexpectedEOFError) Error() string {
	return fmt.Sprintf("ncs: unexpected end of stream at offset %d (wanted %d more bytes)", e.Offset, e.Want)
}
