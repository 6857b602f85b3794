// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncs

import (
	"io/ioutil"
	"log"
	"os"
)

// PrintDebugInfo holds the mode last set by SetDebugMode. Assigning it
// directly does not change logging; SetDebugMode does.
var PrintDebugInfo = false

var logger *log.Logger

func init() {
	w := ioutil.Discard
	if PrintDebugInfo {
		w = os.Stderr
	}
	logger = log.New(w, "", log.Lshortfile)
}

// SetDebugMode toggles verbose decode logging.
func SetDebugMode(v bool) {
	PrintDebugInfo = v
	w := ioutil.Discard
	if v {
		w = os.Stderr
	}
	logger = log.New(w, "ncs: ", log.Lshortfile)
}
