// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/nwscript-tools/ncdecomp/ncs"

// The only two opcodes this package cares about (spec.md §3): everything
// else in a block's instruction stream is opaque payload to the pass.
const (
	jmpOpcode  = ncs.OpJMP
	retnOpcode = ncs.OpRETN
)
