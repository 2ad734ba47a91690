// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// cisterrender draws a number as a Cistercian numeral glyph and saves
// it as a PNG.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ernyoke/imger/imgio"
	"rescribe.xyz/cistercian"
)

const usage = `Usage: cisterrender [-o out.png] [-segments] number

cisterrender draws a number between 0 and 9999 as a Cistercian numeral
glyph and saves it as a PNG. With -segments it also prints the stroke
segments that were drawn for each digit as JSON on stdout.
`

func main() {
	outfile := flag.String("o", "cistercian.png", "path to save the glyph PNG to")
	segments := flag.Bool("segments", false, "print drawn stroke segments as JSON")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	number, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("Invalid number %s\n", flag.Arg(0))
	}

	glyph, err := cistercian.RenderWithSegments(number)
	if err != nil {
		log.Fatalf("Could not render %d: %v\n", number, err)
	}

	err = imgio.Imwrite(glyph.Image, *outfile)
	if err != nil {
		log.Fatalf("Could not write image %s: %v\n", *outfile, err)
	}

	if *segments {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(glyph)
		if err != nil {
			log.Fatalf("Could not encode segments: %v\n", err)
		}
	}
}
