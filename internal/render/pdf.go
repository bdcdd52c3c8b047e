package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/subpair/subpair/internal/align"
)

// Renderer produces a bilingual document from aligned rows.
type Renderer interface {
	Render(rows []align.Row, path string) error
}

// Column describes one language column: the font registered for it.
type Column struct {
	FontName string
	FontFile string
}

// Options contains page layout settings.
type Options struct {
	PageSize string
	MarginMM float64
	FontSize float64
}

// DefaultOptions matches the layout of the original tool: A4, 10mm
// margins, 9pt justified text.
func DefaultOptions() Options {
	return Options{
		PageSize: "A4",
		MarginMM: 10,
		FontSize: 9,
	}
}

type rgb struct{ r, g, b int }

var (
	timecodeLeft  = rgb{0x00, 0x66, 0xCC}
	timecodeRight = rgb{0xCC, 0x00, 0x33}
	fillLeft      = rgb{0xF8, 0xF8, 0xFF}
	fillRight     = rgb{0xFF, 0xF8, 0xF0}
	gridGrey      = rgb{0x80, 0x80, 0x80}
)

const (
	cellPadMM  = 1.1
	timecodePt = 8
)

// PDF renders aligned rows as a two-column table, one language per side,
// with a small colored timecode above each text cell.
type PDF struct {
	left  Column
	right Column
	opts  Options
}

func NewPDF(left, right Column, opts Options) *PDF {
	return &PDF{left: left, right: right, opts: opts}
}

// Render writes the document to path. Output is written to a temporary
// name first and renamed on success, so a failed run never leaves a
// partial file behind.
func (p *PDF) Render(rows []align.Row, path string) error {
	pdf := fpdf.New("P", "mm", p.opts.PageSize, "")
	pdf.SetMargins(p.opts.MarginMM, p.opts.MarginMM, p.opts.MarginMM)
	pdf.SetAutoPageBreak(false, p.opts.MarginMM)

	pdf.AddUTF8Font(p.left.FontName, "", p.left.FontFile)
	pdf.AddUTF8Font(p.right.FontName, "", p.right.FontFile)
	if pdf.Err() {
		return fmt.Errorf("register fonts: %w", pdf.Error())
	}
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	margin := p.opts.MarginMM
	colW := (pageW - 2*margin) / 2
	textW := colW - 2*cellPadMM

	// 11pt leading over 9pt type, converted to mm
	lineH := p.opts.FontSize * 11 / 9 * 25.4 / 72
	timeH := timecodePt * 25.4 / 72 * 1.1

	for _, row := range rows {
		textA := StripMarkup(row.TextA)
		textB := StripMarkup(row.TextB)

		pdf.SetFont(p.left.FontName, "", p.opts.FontSize)
		linesA := len(pdf.SplitText(textA, textW))
		pdf.SetFont(p.right.FontName, "", p.opts.FontSize)
		linesB := len(pdf.SplitText(textB, textW))

		lines := max(linesA, linesB, 1)
		rowH := 2*cellPadMM + timeH + float64(lines)*lineH

		if pdf.GetY()+rowH > pageH-margin {
			pdf.AddPage()
		}
		y := pdf.GetY()

		pdf.SetFillColor(fillLeft.r, fillLeft.g, fillLeft.b)
		pdf.Rect(margin, y, colW, rowH, "F")
		pdf.SetFillColor(fillRight.r, fillRight.g, fillRight.b)
		pdf.Rect(margin+colW, y, colW, rowH, "F")

		pdf.SetDrawColor(gridGrey.r, gridGrey.g, gridGrey.b)
		pdf.SetLineWidth(0.18)
		pdf.Rect(margin, y, colW, rowH, "D")
		pdf.Rect(margin+colW, y, colW, rowH, "D")

		p.drawCell(pdf, margin, y, textW, lineH, timeH,
			row.Start.Text, textA, p.left, timecodeLeft)
		p.drawCell(pdf, margin+colW, y, textW, lineH, timeH,
			row.Start.Text, textB, p.right, timecodeRight)

		pdf.SetY(y + rowH)
	}

	if pdf.Err() {
		return fmt.Errorf("build pdf: %w", pdf.Error())
	}

	tmp := path + ".tmp"
	if err := pdf.OutputFileAndClose(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write pdf: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (p *PDF) drawCell(
	pdf *fpdf.Fpdf,
	x, y, textW, lineH, timeH float64,
	timecode, text string,
	col Column,
	color rgb,
) {
	pdf.SetXY(x+cellPadMM, y+cellPadMM)
	pdf.SetFont(col.FontName, "", timecodePt)
	pdf.SetTextColor(color.r, color.g, color.b)
	pdf.CellFormat(textW, timeH, timecode, "", 0, "L", false, 0, "")

	if text == "" {
		return
	}
	pdf.SetXY(x+cellPadMM, y+cellPadMM+timeH)
	pdf.SetFont(col.FontName, "", p.opts.FontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(textW, lineH, text, "", "J", false)
}

// MakeDir ensures the output directory exists before rendering.
func MakeDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
