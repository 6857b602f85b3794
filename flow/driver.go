// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncsblock"

// Analyze runs the six control-flow detectors over blocks in the fixed
// order the NWScript compiler's emission patterns require: do-while before
// while (or while would claim the same tails do-while is looking for),
// break/continue after both loop kinds are marked, return before if (if's
// "undetermined" check is relaxed for while-heads and must see the final
// shape of every other tag first).
//
// Analyze mutates each block's Controls list in place and returns nothing
// but an error; it never removes edges or otherwise restructures the
// graph. A *StructuralError return means the bytecode violates an
// invariant the compiler is expected to uphold (spec.md §7); any blocks
// already annotated by earlier detectors keep their records, since
// Controls is append-only and locally consistent.
func Analyze(blocks *ncsblock.Blocks) error {
	detectors := []func(*ncsblock.Blocks) error{
		detectDoWhile,
		detectWhile,
		detectBreak,
		detectContinue,
		detectReturn,
		detectIf,
	}

	for _, detect := range detectors {
		if err := detect(blocks); err != nil {
			return err
		}
	}
	return nil
}
