// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// detectIf finds every if and if-else statement: an undetermined block
// (or one whose only primary tag is WhileHead — spec.md's relaxation
// admitting "while head that also starts with a conditional") ending in a
// two-way conditional branch (spec.md §4.7).
func detectIf(blocks *ncsblock.Blocks) error {
	for _, cond := range blocks.All() {
		if cond.HasMainControl() && !cond.IsControl(ncsblock.WhileHead) {
			continue
		}
		if len(cond.Children) != 2 || !cond.HasConditionalChildren() {
			continue
		}

		x, y := cond.Children[0], cond.Children[1]
		isIfElse := !blocks.HasLinearPath(x, y)

		var ifTrue, ifElse, ifNext *ncsblock.Block

		if isIfElse {
			ifTrue, ifElse = x, y
			ifNext = pathMerge(blocks, ifTrue, ifElse)
		} else {
			low, high := x, y
			if y.Address < x.Address {
				low, high = y, x
			}
			ifTrue, ifNext = low, high
		}

		if ifTrue == nil {
			return &StructuralError{
				Address: cond.Address,
				Message: "if-conditional has no resolvable true branch",
			}
		}

		cond.Controls = append(cond.Controls, ncsblock.IfControl(ncsblock.IfCond, cond, ifTrue, ifElse, ifNext))
		ifTrue.Controls = append(ifTrue.Controls, ncsblock.IfControl(ncsblock.IfTrue, cond, ifTrue, ifElse, ifNext))
		if ifElse != nil {
			ifElse.Controls = append(ifElse.Controls, ncsblock.IfControl(ncsblock.IfElse, cond, ifTrue, ifElse, ifNext))
		}
		if ifNext != nil {
			ifNext.Controls = append(ifNext.Controls, ncsblock.IfControl(ncsblock.IfNext, cond, ifTrue, ifElse, ifNext))
		}
	}
	return nil
}
