package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
)

func testSections() []Section {
	return []Section{
		{Title: "Tomato Care Guide", Body: "Difficulty: Beginner"},
		{Title: "Plant Overview", Body: "A hardy vegetable that rewards consistent care."},
		{Title: "Additional Tips", Body: "- Water in the morning\n- Rotate weekly"},
	}
}

func TestRenderProducesValidPNG(t *testing.T) {
	t.Parallel()

	r, err := NewGuideRenderer(Options{})
	if err != nil {
		t.Fatalf("init renderer: %v", err)
	}
	raw, err := r.Render(testSections())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if got := img.Bounds().Dx(); got != defaultWidth {
		t.Fatalf("expected width %d, got %d", defaultWidth, got)
	}
	if img.Bounds().Dy() <= 0 {
		t.Fatal("rendered image has no height")
	}
}

func TestRenderCustomWidth(t *testing.T) {
	t.Parallel()

	r, err := NewGuideRenderer(Options{Width: 640})
	if err != nil {
		t.Fatalf("init renderer: %v", err)
	}
	raw, err := r.Render(testSections())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 640 {
		t.Fatalf("expected width 640, got %d", got)
	}
}

func TestRenderHeightGrowsWithContent(t *testing.T) {
	t.Parallel()

	r, err := NewGuideRenderer(Options{})
	if err != nil {
		t.Fatalf("init renderer: %v", err)
	}

	short, err := r.Render(testSections()[:1])
	if err != nil {
		t.Fatalf("render short: %v", err)
	}
	long, err := r.Render(append(testSections(), Section{
		Title: "Common Problems",
		Body:  strings.Repeat("A long line of body text that will wrap. ", 20),
	}))
	if err != nil {
		t.Fatalf("render long: %v", err)
	}

	shortImg, err := png.Decode(bytes.NewReader(short))
	if err != nil {
		t.Fatalf("decode short: %v", err)
	}
	longImg, err := png.Decode(bytes.NewReader(long))
	if err != nil {
		t.Fatalf("decode long: %v", err)
	}
	if longImg.Bounds().Dy() <= shortImg.Bounds().Dy() {
		t.Fatalf("expected more content to produce a taller image: %d vs %d",
			longImg.Bounds().Dy(), shortImg.Bounds().Dy())
	}
}

func TestRenderRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	r, err := NewGuideRenderer(Options{})
	if err != nil {
		t.Fatalf("init renderer: %v", err)
	}
	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected an error for empty section list")
	}
}

func TestNewGuideRendererMissingFont(t *testing.T) {
	t.Parallel()

	if _, err := NewGuideRenderer(Options{FontPath: "/does/not/exist.ttf"}); err == nil {
		t.Fatal("expected an error for a missing font file")
	}
}
