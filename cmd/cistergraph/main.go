// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// cistergraph graphs how well rendered glyphs survive a render and
// recognize round trip over a range of numbers.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/cistercian"
	"rescribe.xyz/cistercian/recognize"
)

const usage = `Usage: cistergraph [-from n] [-to n] [-step n] out.png

cistergraph renders each number in a range, recognizes the rendered
glyph again, and graphs how many of the four digits were recovered
for each number.
`

// roundtrip renders n, recognizes the render, and counts how many of
// the four digits came back unchanged.
func roundtrip(n int) (int, error) {
	img, err := cistercian.Render(n)
	if err != nil {
		return 0, err
	}
	got := recognize.Recognize(img)

	wu, wt, wh, wth := cistercian.Split(n)
	gu, gt, gh, gth := cistercian.Split(got.Number)
	matched := 0
	for _, pair := range [4][2]int{{wu, gu}, {wt, gt}, {wh, gh}, {wth, gth}} {
		if pair[0] == pair[1] {
			matched++
		}
	}
	return matched, nil
}

func main() {
	from := flag.Int("from", 0, "first number to test")
	to := flag.Int("to", 999, "last number to test")
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

	var points []cistercian.GraphPoint
	for n := *from; n <= *to; n += *step {
		matched, err := roundtrip(n)
		if err != nil {
			log.Fatalf("Round trip of %d failed: %v\n", n, err)
		}
		points = append(points, cistercian.GraphPoint{Number: float64(n), Digits: float64(matched)})
	}

	f, err := os.Create(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", flag.Arg(0), err)
	}
	defer f.Close()
	err = cistercian.Graph(points, fmt.Sprintf("Round trip accuracy %d-%d", *from, *to), f)
	if err != nil {
		log.Fatalf("Could not create graph: %v\n", err)
	}
}
