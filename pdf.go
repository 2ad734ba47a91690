// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package cistercian

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/nickjwhite/gofpdf"
)

// Reference sheet layout, on A4 portrait in points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	sheetCols  = 4
	sheetRows  = 4
	cellMargin = 10
)

// Fpdf builds a reference sheet PDF of rendered glyphs, one number per
// cell with its Arabic value captioned underneath.
type Fpdf struct {
	fpdf *gofpdf.Fpdf
	cell int
}

// Setup creates a new PDF with appropriate settings and fonts
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 12)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddGlyph renders number and places it in the next free cell of the
// sheet, starting a new page when the current one is full.
func (p *Fpdf) AddGlyph(number int) error {
	img, err := Render(number)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("could not encode glyph %d: %v", number, err)
	}

	if p.cell%(sheetCols*sheetRows) == 0 {
		p.fpdf.AddPage()
	}
	col := p.cell % sheetCols
	row := (p.cell / sheetCols) % sheetRows
	p.cell++

	cellW := pageWidth / sheetCols
	cellH := pageHeight / sheetRows
	// Keep the glyph's 3:4 aspect within the cell, leaving room for
	// the caption.
	imgH := cellH - 3*cellMargin
	imgW := imgH * float64(Width) / float64(Height)
	x := float64(col)*cellW + (cellW-imgW)/2
	y := float64(row)*cellH + cellMargin

	name := fmt.Sprintf("glyph%04d", number)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.fpdf.RegisterImageOptionsReader(name, opts, &buf)
	p.fpdf.ImageOptions(name, x, y, imgW, imgH, false, opts, 0, "")

	p.fpdf.SetXY(float64(col)*cellW, y+imgH)
	p.fpdf.CellFormat(cellW, 2*cellMargin, fmt.Sprintf("%d", number), "", 0, "C", false, 0, "")
	return p.fpdf.Error()
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
