// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// detectDoWhile finds every do-while loop: a head block whose later
// parents include a lone-jump tail that jumps straight back to it
// (spec.md §4.2).
func detectDoWhile(blocks *ncsblock.Blocks) error {
	for _, head := range blocks.All() {
		parents := filterLoneJumps(head.GetLaterParents())

		tail := latest(parents)
		if tail == nil || tail.HasMainControl() {
			continue
		}

		next, ok := blocks.GetNextBlock(tail)
		if !ok {
			return &StructuralError{
				Address: tail.Address,
				Message: "do-while loop tail has no following block",
			}
		}

		head.Controls = append(head.Controls, ncsblock.LoopControl(ncsblock.DoWhileHead, head, tail, next))
		tail.Controls = append(tail.Controls, ncsblock.LoopControl(ncsblock.DoWhileTail, head, tail, next))
		next.Controls = append(next.Controls, ncsblock.LoopControl(ncsblock.DoWhileNext, head, tail, next))
	}
	return nil
}
