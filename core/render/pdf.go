// Package render — PDF renderer.
// Converts Markdown into a styled PDF using gofpdf. Handles both setext
// and ATX headings (variable font sizes), paragraphs, code blocks,
// blockquotes, horizontal rules, and lists. Images are not rendered.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title from metadata.
	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, meta.Title, "", "L", false)
		pdf.Ln(4)
	}

	// Source URL, when the document came from one.
	if meta.URL != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+meta.URL, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	// Parse and render Markdown line by line.
	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Toggle code block state.
		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			// Render code lines with monospace font and background.
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		// Skip empty lines (add spacing instead).
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		// Setext heading: a text line followed by an underline of = or -.
		if i+1 < len(lines) && !strings.HasPrefix(line, "#") {
			if level := setextLevel(lines[i+1]); level > 0 {
				renderPDFHeading(pdf, trimmed, level)
				i++
				continue
			}
		}

		// ATX heading.
		if strings.HasPrefix(line, "#") {
			level := 0
			for _, ch := range line {
				if ch != '#' {
					break
				}
				level++
			}
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			text = closingHashesRegex.ReplaceAllString(text, "")
			renderPDFHeading(pdf, text, level)
			continue
		}

		// Horizontal rule.
		if isRuleLine(trimmed) {
			drawRule(pdf)
			continue
		}

		// Blockquote.
		if strings.HasPrefix(trimmed, ">") {
			text := strings.TrimPrefix(strings.TrimPrefix(trimmed, ">"), " ")
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(90, 90, 90)
			pdf.MultiCell(0, 5, cleanInlineMarkdown(text), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		// Bulleted list items.
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "+ ") {
			pdf.SetFont("Helvetica", "", 10)
			text := "• " + strings.TrimSpace(trimmed[2:])
			pdf.MultiCell(0, 5, cleanInlineMarkdown(text), "", "L", false)
			continue
		}

		// Numbered list items.
		if orderedItemRegex.MatchString(trimmed) {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, cleanInlineMarkdown(trimmed), "", "L", false)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, cleanInlineMarkdown(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

var orderedItemRegex = regexp.MustCompile(`^\d+\.\s`)

// setextLevel reports the heading level implied by an underline line of
// = or - characters, or 0 when the line is not an underline.
func setextLevel(line string) int {
	t := strings.TrimSpace(line)
	if t == "" {
		return 0
	}
	if strings.Count(t, "=") == len(t) {
		return 1
	}
	if len(t) >= 2 && strings.Count(t, "-") == len(t) {
		return 2
	}
	return 0
}

// isRuleLine reports whether a line is a horizontal rule. Underlines of
// setext headings never reach this check since they are consumed with
// their heading text.
func isRuleLine(trimmed string) bool {
	return len(trimmed) >= 3 && strings.Count(trimmed, "-") == len(trimmed)
}

// drawRule draws a thin horizontal separator across the text column.
func drawRule(pdf *gofpdf.Fpdf) {
	pdf.Ln(3)
	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(left, y, pageWidth-right, y)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(3)
}

// renderPDFHeading sets the font size based on heading level and writes
// the text.
func renderPDFHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

var italicRegex = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	// Remove bold, strikethrough, and highlight markers.
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = strings.ReplaceAll(text, "~~", "")
	text = strings.ReplaceAll(text, "==", "")
	// Remove italic markers (but not asterisks inside words).
	text = italicRegex.ReplaceAllString(text, " $1 ")
	// Remove inline code markers.
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	// Remove link and image syntax, keep text.
	text = linkRegex.ReplaceAllString(text, "$2")
	text = autolinkRegex.ReplaceAllString(text, "$1")
	// Undo backslash escaping.
	text = escapedCharRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
