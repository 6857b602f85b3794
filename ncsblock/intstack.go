// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncsblock

// intStack is a LIFO of block addresses, used by Build to walk the graph
// without recursion (wagon's internal/stack plays the same role for its
// disassembler's block-nesting walk, but is private to that module and
// cannot be imported here).
type intStack struct {
	vals []int64
}

func (s *intStack) push(v int64) {
	s.vals = append(s.vals, v)
}

func (s *intStack) pop() (int64, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	v := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return v, true
}

func (s *intStack) empty() bool {
	return len(s.vals) == 0
}
