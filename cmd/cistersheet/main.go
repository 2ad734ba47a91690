// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// cistersheet writes a reference sheet PDF of Cistercian numeral
// glyphs for a range of numbers.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/cistercian"
)

type Pdfer interface {
	Setup() error
	AddGlyph(number int) error
	Save(path string) error
}

const usage = `Usage: cistersheet [-from n] [-to n] [-step n] out.pdf

cistersheet renders a range of numbers as Cistercian numeral glyphs
and lays them out on a reference sheet PDF, with the Arabic value
captioned under each glyph.
`

func main() {
	from := flag.Int("from", 0, "first number to include")
	to := flag.Int("to", 99, "last number to include")
	step := flag.Int("step", 1, "step between numbers")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 || *step < 1 || *from > *to {
		flag.Usage()
		os.Exit(1)
	}

	var pdf Pdfer = new(cistercian.Fpdf)
	err := pdf.Setup()
	if err != nil {
		log.Fatalf("Could not set up PDF: %v\n", err)
	}

	for n := *from; n <= *to; n += *step {
		err = pdf.AddGlyph(n)
		if err != nil {
			log.Fatalf("Could not add glyph for %d: %v\n", n, err)
		}
	}

	err = pdf.Save(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not save PDF %s: %v\n", flag.Arg(0), err)
	}
}
