// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// detectWhile finds every while loop: identical to detectDoWhile, except
// the tail is not restricted to a lone jump — a while tail contains the
// loop condition and the back-jump itself (spec.md §4.3). Because the
// tail must still be undetermined, a tail already claimed as a do-while
// tail is skipped.
func detectWhile(blocks *ncsblock.Blocks) error {
	for _, head := range blocks.All() {
		parents := head.GetLaterParents()

		tail := latest(parents)
		if tail == nil || tail.HasMainControl() {
			continue
		}

		next, ok := blocks.GetNextBlock(tail)
		if !ok {
			return &StructuralError{
				Address: tail.Address,
				Message: "while loop tail has no following block",
			}
		}

		head.Controls = append(head.Controls, ncsblock.LoopControl(ncsblock.WhileHead, head, tail, next))
		tail.Controls = append(tail.Controls, ncsblock.LoopControl(ncsblock.WhileTail, head, tail, next))
		next.Controls = append(next.Controls, ncsblock.LoopControl(ncsblock.WhileNext, head, tail, next))
	}
	return nil
}
