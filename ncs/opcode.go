// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncs

import "fmt"

// Opcode identifies an NWScript bytecode instruction. The byte values match
// the compiled .ncs instruction stream emitted by BioWare's NWScript
// compiler across the Aurora-family engines.
type Opcode byte

// Opcodes relevant to control-flow recovery and expression emission. Only
// JMP and RETN carry meaning for the flow package; the rest are opaque
// payload as far as that package is concerned (spec.md §3).
const (
	OpCPDOWNSP      Opcode = 0x01
	OpRSADD         Opcode = 0x02
	OpCPTOPSP       Opcode = 0x03
	OpCONST         Opcode = 0x04
	OpACTION        Opcode = 0x05
	OpLOGAND        Opcode = 0x06
	OpLOGOR         Opcode = 0x07
	OpINCOR         Opcode = 0x08
	OpEXCOR         Opcode = 0x09
	OpBOOLAND       Opcode = 0x0a
	OpEQUAL         Opcode = 0x0b
	OpNEQUAL        Opcode = 0x0c
	OpGEQ           Opcode = 0x0d
	OpGT            Opcode = 0x0e
	OpLT            Opcode = 0x0f
	OpLEQ           Opcode = 0x10
	OpSHLEFT        Opcode = 0x11
	OpSHRIGHT       Opcode = 0x12
	OpUSHRIGHT      Opcode = 0x13
	OpADD           Opcode = 0x14
	OpSUB           Opcode = 0x15
	OpMUL           Opcode = 0x16
	OpDIV           Opcode = 0x17
	OpMOD           Opcode = 0x18
	OpNEG           Opcode = 0x19
	OpCOMP          Opcode = 0x1a
	OpMOVSP         Opcode = 0x1b
	OpSTORESS       Opcode = 0x1c // STORE_STATE
	OpJMP           Opcode = 0x1d
	OpJSR           Opcode = 0x1e
	OpJZ            Opcode = 0x1f
	OpRETN          Opcode = 0x20
	OpDESTRUCT      Opcode = 0x21
	OpNOT           Opcode = 0x22
	OpDECSP         Opcode = 0x23
	OpINCSP         Opcode = 0x24
	OpJNZ           Opcode = 0x25
	OpCPDOWNBP      Opcode = 0x26
	OpCPTOPBP       Opcode = 0x27
	OpDECBP         Opcode = 0x28
	OpINCBP         Opcode = 0x29
	OpSAVEBP        Opcode = 0x2a
	OpRESTOREBP     Opcode = 0x2b
	OpSTORESTATEALL Opcode = 0x2c
	OpNOP           Opcode = 0x2d
)

var opcodeNames = map[Opcode]string{
	OpCPDOWNSP:      "CPDOWNSP",
	OpRSADD:         "RSADD",
	OpCPTOPSP:       "CPTOPSP",
	OpCONST:         "CONST",
	OpACTION:        "ACTION",
	OpLOGAND:        "LOGAND",
	OpLOGOR:         "LOGOR",
	OpINCOR:         "INCOR",
	OpEXCOR:         "EXCOR",
	OpBOOLAND:       "BOOLAND",
	OpEQUAL:         "EQUAL",
	OpNEQUAL:        "NEQUAL",
	OpGEQ:           "GEQ",
	OpGT:            "GT",
	OpLT:            "LT",
	OpLEQ:           "LEQ",
	OpSHLEFT:        "SHLEFT",
	OpSHRIGHT:       "SHRIGHT",
	OpUSHRIGHT:      "USHRIGHT",
	OpADD:           "ADD",
	OpSUB:           "SUB",
	OpMUL:           "MUL",
	OpDIV:           "DIV",
	OpMOD:           "MOD",
	OpNEG:           "NEG",
	OpCOMP:          "COMP",
	OpMOVSP:         "MOVSP",
	OpSTORESS:       "STORE_STATE",
	OpJMP:           "JMP",
	OpJSR:           "JSR",
	OpJZ:            "JZ",
	OpRETN:          "RETN",
	OpDESTRUCT:      "DESTRUCT",
	OpNOT:           "NOT",
	OpDECSP:         "DECSP",
	OpINCSP:         "INCSP",
	OpJNZ:           "JNZ",
	OpCPDOWNBP:      "CPDOWNBP",
	OpCPTOPBP:       "CPTOPBP",
	OpDECBP:         "DECBP",
	OpINCBP:         "INCBP",
	OpSAVEBP:        "SAVEBP",
	OpRESTOREBP:     "RESTOREBP",
	OpSTORESTATEALL: "STORESTATEALL",
	OpNOP:           "NOP",
}

// String returns the mnemonic used by BioWare's own disassemblers, or a
// hex fallback for an opcode outside the known set.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", byte(o))
}

// hasJumpOffset reports whether this opcode's first operand is a signed
// 32-bit relative jump offset.
func (o Opcode) hasJumpOffset() bool {
	switch o {
	case OpJMP, OpJSR, OpJZ, OpJNZ, OpSTORESS:
		return true
	default:
		return false
	}
}

// StackDelta returns the net number of 4-byte stack cells this opcode
// pushes (positive) or pops (negative), for opcodes whose effect does not
// depend on a variable-length operand. ACTION's effect depends on the
// engine function being called and is resolved by the caller; RSADD/CONST
// always push exactly one cell.
func (o Opcode) StackDelta() int {
	switch o {
	case OpRSADD, OpCONST:
		return 1
	case OpLOGAND, OpLOGOR, OpINCOR, OpEXCOR, OpBOOLAND,
		OpEQUAL, OpNEQUAL, OpGEQ, OpGT, OpLT, OpLEQ,
		OpSHLEFT, OpSHRIGHT, OpUSHRIGHT,
		OpADD, OpSUB, OpMUL, OpDIV, OpMOD:
		return -1
	case OpNEG, OpNOT, OpCOMP:
		return 0
	default:
		return 0
	}
}
