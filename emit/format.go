// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"fmt"
	"io"

	"github.com/nwscript-tools/ncdecomp/ncs"
	"github.com/nwscript-tools/ncdecomp/ncsblock"
)

// writeBody prints b's instructions as a disassembly comment block,
// grounded on cmd/wasm-dump's printDis offset/mnemonic formatting. A
// trailing JMP or RETN is stripped: it is the structural edge the caller
// already rendered as a keyword (the closing brace, "return;", ...), not
// a statement of its own. No expression tree is reconstructed (spec.md
// Non-goals: no semantic-equivalence verification against the bytecode).
func writeBody(w io.Writer, b *ncsblock.Block) {
	instrs := b.Instructions
	if n := len(instrs); n > 0 {
		switch instrs[n-1].Op {
		case ncs.OpJMP, ncs.OpRETN:
			instrs = instrs[:n-1]
		}
	}
	for _, in := range instrs {
		fmt.Fprintf(w, "  // %06x: %-10s depth=%d\n", in.Offset, in.Op, in.Depth)
	}
}

// condComment renders a one-line stand-in for the condition expression
// guarding cond's conditional branch: the opcode immediately before the
// trailing JZ/JNZ, since NWScript always evaluates the condition onto the
// stack right before testing it.
func condComment(cond *ncsblock.Block) string {
	instrs := cond.Instructions
	if len(instrs) < 2 {
		return "/* cond */"
	}
	return fmt.Sprintf("/* cond, addr=%06x op=%s */", instrs[len(instrs)-2].Offset, instrs[len(instrs)-2].Op)
}

// isJumpOnly reports whether b's sole instruction is an unconditional
// jump — true for a do-while tail or a break/continue lone jump — so
// nothing but the keyword the caller already printed belongs to it.
func isJumpOnly(b *ncsblock.Block) bool {
	return len(b.Instructions) == 1 && b.Instructions[0].Op == ncs.OpJMP
}

// returnControl locates b's own Return record, if any.
func returnControl(b *ncsblock.Block) (ncsblock.Control, bool) {
	for _, c := range b.Controls {
		if c.Tag == ncsblock.Return {
			return c, true
		}
	}
	return ncsblock.Control{}, false
}

// hasPendingValue reports whether the RETN instruction b actually
// returns through left a non-empty value on the stack, per Build's
// per-instruction stack-depth analysis.
func hasPendingValue(b *ncsblock.Block) bool {
	for _, in := range b.Instructions {
		if in.Op == ncs.OpRETN {
			return in.Depth > 0
		}
	}
	return false
}
