// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// detectBreak finds every "break;" statement: an undetermined lone jump
// whose single child is annotated as some loop's Next block (spec.md
// §4.4).
func detectBreak(blocks *ncsblock.Blocks) error {
	for _, b := range blocks.All() {
		if b.HasMainControl() || !isLoneJump(b) {
			continue
		}
		if len(b.Children) != 1 || !b.Children[0].IsLoopNext() {
			continue
		}

		head, tail, next, ok := b.Children[0].GetLoop()
		if !ok {
			continue
		}

		b.Controls = append(b.Controls, ncsblock.LoopControl(ncsblock.Break, head, tail, next))
	}
	return nil
}
