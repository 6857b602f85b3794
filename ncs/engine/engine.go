// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine holds the per-game name tables for NWScript's opaque
// "engine structure" types. NWScript itself only knows these as numbered
// engine types 0..N; each Aurora-family game substitutes its own set of
// names (event, location, effect, ...). This has no bearing on
// control-flow recovery. The emit package does not consult these tables;
// the ncdecomp CLI uses a Game only to print its name in each file's
// header line.
package engine

import (
	"fmt"
	"strings"
)

// Game identifies one of the Aurora-family titles whose NWScript compiler
// emitted the script being analyzed.
type Game int

const (
	NWN Game = iota
	NWN2
	KotOR
	KotOR2
	Jade
	DragonAge
	DragonAge2
)

var gameNames = map[Game]string{
	NWN: "nwn", NWN2: "nwn2", KotOR: "kotor", KotOR2: "kotor2",
	Jade: "jade", DragonAge: "dragonage", DragonAge2: "dragonage2",
}

// String returns the CLI name ParseGame accepts for g.
func (g Game) String() string {
	if name, ok := gameNames[g]; ok {
		return name
	}
	return "unknown"
}

// Names returns the ordered engine-type name table for g, or nil if g is
// not a recognized game.
func Names(g Game) []string {
	return tables[g]
}

var byName = map[string]Game{
	"nwn":        NWN,
	"nwn2":       NWN2,
	"kotor":      KotOR,
	"kotor2":     KotOR2,
	"jade":       Jade,
	"dragonage":  DragonAge,
	"dragonage2": DragonAge2,
}

// ParseGame resolves a CLI-style game name (e.g. "nwn2", "dragonage2") to
// its Game constant. Matching is case-insensitive.
func ParseGame(name string) (Game, bool) {
	g, ok := byName[strings.ToLower(name)]
	return g, ok
}

// Name returns the name of engine type index i for game g, or the numeric
// fallback "engine_type_N" if g or i is out of range ("engine_type_?" when
// i is negative).
func Name(g Game, i int) string {
	names := tables[g]
	if i < 0 || i >= len(names) {
		return fallback(i)
	}
	return names[i]
}

func fallback(i int) string {
	if i < 0 {
		return "engine_type_?"
	}
	return fmt.Sprintf("engine_type_%d", i)
}

var tables = map[Game][]string{
	NWN: {
		"Effect", "Event", "Location", "Talent",
	},
	NWN2: {
		"Effect", "Event", "Location", "Talent", "ItemProperty",
	},
	KotOR: {
		"Effect", "Event", "Location", "Talent",
	},
	KotOR2: {
		"Effect", "Event", "Location", "Talent",
	},
	Jade: {
		"Effect", "Event", "Location", "Talent",
	},
	DragonAge: {
		"Event", "Location", "Command", "Effect", "ItemProperty",
	},
	DragonAge2: {
		"Event", "Location", "Command", "Effect", "ItemProperty", "Player",
	},
}
