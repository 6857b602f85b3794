// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"fmt"
	"io"

	"github.com/nwscript-tools/ncdecomp/ncsblock"
)

// Source renders blocks as pseudo-NSS: do { ... } while (cond);,
// while (cond) { ... }, if (cond) { ... } else { ... }, break;,
// continue;, return; or return /* value */;, and a raw comment for blocks
// no detector claimed, followed by a goto when such a block's single
// successor is not the next block (spec.md §7: non-matches are never
// errors).
//
// The walk is flat and driven entirely by each block's own Controls list
// — it does not build a nested statement tree — printed in address
// order, which is also construction order for every example this pass
// targets (spec.md Non-goals: no semantic-equivalence verification of
// the recovered structure).
func Source(w io.Writer, blocks *ncsblock.Blocks) error {
	for _, b := range blocks.All() {
		logger.Printf("emit block address=%d controls=%d", b.Address, len(b.Controls))

		printClosers(w, b)
		printOpeners(w, b)

		switch {
		case b.IsControl(ncsblock.Break):
			fmt.Fprintln(w, "break;")
		case b.IsControl(ncsblock.Continue):
			fmt.Fprintln(w, "continue;")
		case b.IsControl(ncsblock.Return):
			writeBody(w, b)
			writeReturn(w, b)
		case len(b.Controls) == 0:
			fmt.Fprintf(w, "// unclaimed block, address=%d\n", b.Address)
			writeBody(w, b)
			writeGoto(w, blocks, b)
		case isJumpOnly(b):
			// A do-while/while tail's back-jump, or a break/continue lone
			// jump: the caller already printed the keyword it stands for.
		default:
			writeBody(w, b)
		}
	}
	return nil
}

// printOpeners prints the keyword that begins a control structure rooted
// at b, for the three head-shaped tags.
func printOpeners(w io.Writer, b *ncsblock.Block) {
	switch {
	case b.IsControl(ncsblock.DoWhileHead):
		fmt.Fprintln(w, "do {")
		return
	case b.IsControl(ncsblock.WhileHead):
		// A block that is both a WhileHead and an IfCond is the loop's own
		// condition test, not a nested if (DESIGN.md: "if over
		// while-head") — print only the while.
		fmt.Fprintf(w, "while (%s) {\n", condComment(b))
	case b.IsControl(ncsblock.IfCond):
		fmt.Fprintf(w, "if (%s) {\n", condComment(b))
	}
}

// printClosers prints the keyword that ends or transitions a control
// structure b is the Tail/Else/Next of, in Controls order. An if whose
// condition block is also a while head was printed as that while's own
// condition, so its Else/Next records print nothing.
func printClosers(w io.Writer, b *ncsblock.Block) {
	for _, c := range b.Controls {
		whileCond := c.Cond != nil && c.Cond.IsControl(ncsblock.WhileHead)
		switch c.Tag {
		case ncsblock.DoWhileTail:
			fmt.Fprintf(w, "} while (%s);\n", condComment(c.Head))
		case ncsblock.WhileTail:
			fmt.Fprintln(w, "}")
		case ncsblock.IfElse:
			if !whileCond {
				fmt.Fprintln(w, "} else {")
			}
		case ncsblock.IfNext:
			if !whileCond {
				fmt.Fprintln(w, "}")
			}
		}
	}
}

func writeReturn(w io.Writer, b *ncsblock.Block) {
	target := b
	if c, ok := returnControl(b); ok && c.ReturnBlock != nil {
		target = c.ReturnBlock
	}
	if hasPendingValue(target) {
		fmt.Fprintln(w, "return /* value */;")
		return
	}
	fmt.Fprintln(w, "return;")
}

// writeGoto prints an explicit goto when an unclaimed block's single
// successor is not the block the address-order walk would reach next on
// its own.
func writeGoto(w io.Writer, blocks *ncsblock.Blocks, b *ncsblock.Block) {
	if len(b.Children) != 1 {
		return
	}
	next, ok := blocks.GetNextBlock(b)
	if ok && b.Children[0] == next {
		return
	}
	fmt.Fprintf(w, "goto block_%d;\n", b.Children[0].Address)
}
