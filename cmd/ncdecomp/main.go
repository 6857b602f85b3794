// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/nwscript-tools/ncdecomp/emit"
	"github.com/nwscript-tools/ncdecomp/flow"
	"github.com/nwscript-tools/ncdecomp/ncs"
	"github.com/nwscript-tools/ncdecomp/ncs/engine"
	"github.com/nwscript-tools/ncdecomp/ncsblock"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ncdecomp [options] file1.ncs [file2.ncs [...]]

ex:
 $> ncdecomp -engine nwn2 ./k_hen_listen.ncs

options:
`,
		)
		flag.PrintDefaults()
		os.Exit(1)
	}
}

var (
	flagVerbose = flag.Bool("v", false, "enable/disable verbose mode")
	flagBlocks  = flag.Bool("blocks", false, "dump the raw block graph instead of decompiled source")
	flagEngine  = flag.String("engine", "nwn", "game to name in each file's output header (nwn, nwn2, kotor, kotor2, jade, dragonage, dragonage2)")
)

func main() {
	log.SetPrefix("ncdecomp: ")
	log.SetFlags(0)

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
	}

	game, ok := engine.ParseGame(*flagEngine)
	if !ok {
		log.Fatalf("unrecognized -engine %q", *flagEngine)
	}

	ncs.SetDebugMode(*flagVerbose)
	ncsblock.SetDebugMode(*flagVerbose)
	emit.SetDebugMode(*flagVerbose)

	for i, fname := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		if err := process(os.Stdout, fname, game); err != nil {
			log.Fatalf("%s: %v", fname, err)
		}
	}
}

// process reads, analyzes, and prints one compiled script to w. fname is
// opened memory-mapped (github.com/edsrzf/mmap-go) rather than read fully
// into memory, since compiled scripts can be large and only the header
// and instruction stream need ever be touched.
func process(w io.Writer, fname string, game engine.Game) error {
	f, err := os.Open(fname)
	if err != nil {
		return fmt.Errorf("could not open file: %v", err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("could not mmap file: %v", err)
	}
	defer data.Unmap()

	p, err := ncs.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not read program: %v", err)
	}

	blocks, err := ncsblock.Build(p)
	if err != nil {
		return fmt.Errorf("could not build blocks: %v", err)
	}

	if err := flow.Analyze(blocks); err != nil {
		return fmt.Errorf("could not analyze control flow: %v", err)
	}

	fmt.Fprintf(w, "%s: engine=%s size=%d blocks=%d\n", fname, game, p.Size, blocks.Len())

	if *flagBlocks {
		return dumpBlocks(w, blocks)
	}
	return emit.Source(w, blocks)
}

func dumpBlocks(w io.Writer, blocks *ncsblock.Blocks) error {
	for _, b := range blocks.All() {
		fmt.Fprintf(w, "block %06x (%d instructions)\n", b.Address, len(b.Instructions))
		var parents, children []int64
		for _, p := range b.Parents {
			parents = append(parents, p.Address)
		}
		for _, c := range b.Children {
			children = append(children, c.Address)
		}
		fmt.Fprintf(w, "  parents:  %v\n", parents)
		fmt.Fprintf(w, "  children: %v\n", children)
		for _, in := range b.Instructions {
			fmt.Fprintf(w, "  %06x: %-10s depth=%d\n", in.Offset, in.Op, in.Depth)
		}
	}
	return nil
}
