// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// detectReturn finds every "return;" (and "return $value;") statement
// (spec.md §4.6). A shared RETN-only block reached by several source-level
// returns has the Return record pushed onto each unclaimed, unconditional
// parent instead of onto the shared block itself — the pattern the
// NWScript compiler uses to fold multiple returns into one RETN.
func detectReturn(blocks *ncsblock.Blocks) error {
	for _, b := range blocks.All() {
		if b.HasMainControl() || !hasRETN(b) {
			continue
		}
		if b.Subroutine == nil || b.Subroutine.Address == b.Address {
			continue
		}

		hasReturnParent := false

		if isSingularBlock(b) {
			for _, p := range b.Parents {
				if p.HasUnconditionalChildren() && !p.HasMainControl() {
					hasReturnParent = true
					p.Controls = append(p.Controls, ncsblock.ReturnControl(b))
				}
			}
		}

		if !hasReturnParent {
			b.Controls = append(b.Controls, ncsblock.ReturnControl(b))
		}
	}
	return nil
}

func hasRETN(b *ncsblock.Block) bool {
	for _, in := range b.Instructions {
		if in.Op == retnOpcode {
			return true
		}
	}
	return false
}
