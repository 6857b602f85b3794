// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsblock

import "fmt"

// BuildError is returned by Build when the instruction stream violates an
// invariant the NWScript compiler is expected to uphold: a jump to an
// offset that is not the start of any instruction.
type BuildError struct {
	Offset int
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("ncsblock: %s at offset %d", e.Reason, e.Offset)
}
