// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// cisterread reads the number out of an image of a Cistercian numeral
// glyph.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"rescribe.xyz/cistercian/recognize"
)

const usage = `Usage: cisterread [-segments] [-v] imgfile

cisterread reads the number out of an image believed to contain a
Cistercian numeral glyph and prints it. Images that contain nothing
recognizable print 0. With -segments the detected segment positions
are printed as JSON instead of the bare number.
`

func main() {
	segments := flag.Bool("segments", false, "print the full recognition result as JSON")
	verbose := flag.Bool("v", false, "verbose")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stderr, "", log.LstdFlags)
	} else {
		verboselog = log.New(io.Discard, "", 0)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not open file %s: %v\n", flag.Arg(0), err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatalf("Could not decode image %s: %v\n", flag.Arg(0), err)
	}

	r := recognize.Recognizer{Log: verboselog}
	result := r.Recognize(img)

	if *segments {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(result)
		if err != nil {
			log.Fatalf("Could not encode result: %v\n", err)
		}
		return
	}
	fmt.Println(result.Number)
}
