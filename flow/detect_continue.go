// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// detectContinue finds every "continue;" statement: identical to
// detectBreak, except the single child must be annotated as the loop's
// Tail block rather than its Next block (spec.md §4.5).
func detectContinue(blocks *ncsblock.Blocks) error {
	for _, b := range blocks.All() {
		if b.HasMainControl() || !isLoneJump(b) {
			continue
		}
		if len(b.Children) != 1 || !b.Children[0].IsLoopTail() {
			continue
		}

		head, tail, next, ok := b.Children[0].GetLoop()
		if !ok {
			continue
		}

		b.Controls = append(b.Controls, ncsblock.LoopControl(ncsblock.Continue, head, tail, next))
	}
	return nil
}
