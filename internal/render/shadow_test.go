package render

import (
	"image"
	"image/color"
	"testing"
)

func TestDropShadowKeepsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	subject := image.Pt(5, 5)
	img.Set(subject.X, subject.Y, color.RGBA{R: 255, A: 255})

	opts := ShadowOptions{Radius: 1, Offset: image.Pt(2, 1), Opacity: 1, Color: color.NRGBA{A: 255}}
	out := DropShadow(img, opts)
	if !out.Bounds().Eq(img.Bounds()) {
		t.Fatalf("unexpected bounds %v, want %v", out.Bounds(), img.Bounds())
	}
	shadowPt := subject.Add(opts.Offset)
	if out.RGBAAt(shadowPt.X, shadowPt.Y).A == 0 {
		t.Fatalf("expected shadow alpha at %v", shadowPt)
	}
	if got := out.RGBAAt(subject.X, subject.Y); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("subject pixel changed: %+v", got)
	}
}

func TestDropShadowDisabled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	img.Set(1, 1, fill)
	out := DropShadow(img, ShadowOptions{Radius: 12, Offset: image.Pt(1, 1), Opacity: 0})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := out.RGBAAt(x, y), img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel mismatch at (%d,%d): got %+v want %+v", x, y, got, want)
			}
		}
	}
}

func TestDropShadowNil(t *testing.T) {
	if DropShadow(nil, DefaultShadowOptions()) != nil {
		t.Fatal("expected nil for nil layer")
	}
}

func TestBoxBlurSpreadsAlpha(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 5, 1))
	src.SetAlpha(2, 0, color.Alpha{A: 255})
	out := boxBlur(src, 1)
	want := []uint8{0, 85, 85, 85, 0}
	for x, w := range want {
		if got := out.AlphaAt(x, 0).A; got != w {
			t.Fatalf("alpha at %d = %d, want %d", x, got, w)
		}
	}
}

func TestShadowScaled(t *testing.T) {
	o := ShadowOptions{Radius: 3, Offset: image.Pt(1, 2), Opacity: 0.5}
	got := o.Scaled(800, 400)
	if got.Radius != 6 || got.Offset != image.Pt(2, 4) || got.Opacity != 0.5 {
		t.Fatalf("unexpected scaled options %+v", got)
	}
	if same := o.Scaled(400, 400); same != o {
		t.Fatalf("expected unchanged options, got %+v", same)
	}
}

func TestDisc(t *testing.T) {
	mask := Disc(image.Rect(0, 0, 20, 20), 10, 10, 10)
	if a := mask.AlphaAt(10, 10).A; a != 255 {
		t.Fatalf("centre alpha %d, want 255", a)
	}
	if a := mask.AlphaAt(0, 0).A; a != 0 {
		t.Fatalf("corner alpha %d, want 0", a)
	}
	edge := mask.AlphaAt(0, 10).A
	if edge == 0 || edge == 255 {
		t.Fatalf("expected partial coverage on the rim, got %d", edge)
	}
	if empty := Disc(image.Rect(0, 0, 4, 4), 2, 2, 0); empty.AlphaAt(2, 2).A != 0 {
		t.Fatal("zero radius disc should be empty")
	}
}
