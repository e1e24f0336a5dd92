package render

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Section is one panel of the rendered guide: a heading and pre-formatted
// body text (lines separated by '\n', bullets already inlined).
type Section struct {
	Title string
	Body  string
}

type Options struct {
	// FontPath optionally points at a TTF file. Without it the renderer
	// falls back to the fixed-size basicfont face, which keeps the service
	// runnable with no assets on disk.
	FontPath string
	Width    int
}

type GuideRenderer struct {
	width      int
	headingFce font.Face
	bodyFace   font.Face
}

const (
	defaultWidth = 1200
	marginX      = 56.0
	marginY      = 56.0
	sectionGap   = 34.0
	headingGap   = 12.0
)

func NewGuideRenderer(opts Options) (*GuideRenderer, error) {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	var headingFace, bodyFace font.Face
	if strings.TrimSpace(opts.FontPath) != "" {
		raw, err := os.ReadFile(opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("read font file: %w", err)
		}
		f, err := truetype.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse font file: %w", err)
		}
		headingFace = truetype.NewFace(f, &truetype.Options{Size: 30, Hinting: font.HintingFull})
		bodyFace = truetype.NewFace(f, &truetype.Options{Size: 17, Hinting: font.HintingFull})
	} else {
		headingFace = basicfont.Face7x13
		bodyFace = basicfont.Face7x13
	}

	return &GuideRenderer{
		width:      width,
		headingFce: headingFace,
		bodyFace:   bodyFace,
	}, nil
}

// Render lays the sections out top to bottom on a single canvas and returns
// the encoded PNG. Section order is preserved exactly as given.
func (r *GuideRenderer) Render(sections []Section) ([]byte, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections to render")
	}

	textWidth := float64(r.width) - 2*marginX
	headingLH := lineHeight(r.headingFce)
	bodyLH := lineHeight(r.bodyFace)

	// Measuring pass. Wrapping depends on the active font face, so a scratch
	// context computes each section's height before the real canvas exists.
	measure := gg.NewContext(r.width, 1)
	height := 2 * marginY
	wrapped := make([][]string, len(sections))
	for i, sec := range sections {
		measure.SetFontFace(r.bodyFace)
		lines := wrapBody(measure, sec.Body, textWidth)
		wrapped[i] = lines
		height += headingLH + headingGap + float64(len(lines))*bodyLH
		if i < len(sections)-1 {
			height += sectionGap
		}
	}

	dc := gg.NewContext(r.width, int(height)+1)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	y := marginY
	for i, sec := range sections {
		dc.SetFontFace(r.headingFce)
		dc.SetRGB(0.13, 0.37, 0.20)
		y += headingLH
		dc.DrawString(sec.Title, marginX, y)

		dc.SetRGB(0.75, 0.84, 0.77)
		dc.SetLineWidth(1.5)
		dc.DrawLine(marginX, y+4, float64(r.width)-marginX, y+4)
		dc.Stroke()
		y += headingGap

		dc.SetFontFace(r.bodyFace)
		dc.SetRGB(0.18, 0.20, 0.19)
		for _, line := range wrapped[i] {
			y += bodyLH
			dc.DrawString(line, marginX, y)
		}
		y += sectionGap
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode guide png: %w", err)
	}
	return buf.Bytes(), nil
}

func wrapBody(dc *gg.Context, body string, width float64) []string {
	var out []string
	for _, raw := range strings.Split(body, "\n") {
		if strings.TrimSpace(raw) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, dc.WordWrap(raw, width)...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func lineHeight(face font.Face) float64 {
	m := face.Metrics()
	return float64((m.Ascent + m.Descent).Ceil()) + 6
}
