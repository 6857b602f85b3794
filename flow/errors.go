// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flow recovers high-level control-flow constructs — do-while and
// while loops, if/if-else conditionals, and break/continue/return
// statements — from a control-flow graph of NWScript basic blocks. See
// SPEC_FULL.md for the full design; this package implements spec.md §4
// exactly, as six detectors run in a fixed order by Analyze.
package flow

import "fmt"

// StructuralError is returned when an invariant the NWScript compiler is
// expected to uphold does not hold for the input graph: a loop tail with
// no address-following block, or an if-conditional with no resolvable
// true branch (spec.md §7).
type StructuralError struct {
	Address int64
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("flow: structural error at address %d: %s", e.Address, e.Message)
}
