package raster

import (
	"errors"
	"testing"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
)

func TestNewBitmap(t *testing.T) {
	b := NewBitmap(4, 3)
	if b.Cols() != 4 || b.Rows() != 3 {
		t.Fatalf("dims = %dx%d, want 4x3", b.Cols(), b.Rows())
	}
	if b.Len() != 12 || len(b.Pix()) != 12 {
		t.Fatalf("len = %d, want 12", b.Len())
	}
	for i, px := range b.Pix() {
		if px != (mathutil.Vec3{}) {
			t.Fatalf("pixel %d = %v, want zero", i, px)
		}
	}

	empty := NewBitmap(-2, 5)
	if empty.Cols() != 0 || empty.Len() != 0 {
		t.Fatalf("negative cols gave %dx%d", empty.Cols(), empty.Rows())
	}
}

func TestRowView(t *testing.T) {
	b := NewBitmap(4, 3)
	want := mathutil.Vec3{0.1, 0.2, 0.3}
	b.Row(1)[2] = want

	got, err := b.At(2, 1)
	if err != nil || got != want {
		t.Fatalf("At(2, 1) = %v, %v; want %v", got, err, want)
	}
	if b.Pix()[1*4+2] != want {
		t.Fatal("row view does not alias backing storage")
	}
	for i, px := range b.Pix() {
		if i != 6 && px != (mathutil.Vec3{}) {
			t.Fatalf("pixel %d = %v, want zero", i, px)
		}
	}
	if len(b.Row(2)) != 4 || cap(b.Row(0)) != 4 {
		t.Fatalf("row len/cap = %d/%d", len(b.Row(2)), cap(b.Row(0)))
	}

	b.Pixel(3, 2).AddAssign(mathutil.Splat(1))
	if b.Row(2)[3] != mathutil.Splat(1) {
		t.Fatalf("Pixel(3, 2) write not visible: %v", b.Row(2)[3])
	}
}

func TestCheckedAccess(t *testing.T) {
	b := NewBitmap(4, 3)
	if err := b.Set(3, 2, mathutil.Splat(5)); err != nil {
		t.Fatalf("Set(3, 2): %v", err)
	}
	for _, c := range [][2]int{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		if _, err := b.At(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At%v err = %v, want ErrOutOfBounds", c, err)
		}
		if err := b.Set(c[0], c[1], mathutil.Vec3{}); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set%v err = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestRowOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Row(3) on a 3-row bitmap did not panic")
		}
	}()
	NewBitmap(4, 3).Row(3)[0] = mathutil.Vec3{}
}

func TestFillScale(t *testing.T) {
	b := NewBitmap(2, 2)
	b.Fill(mathutil.Vec3{2, 4, 8})
	b.Scale(0.5)
	for i, px := range b.Pix() {
		if px != (mathutil.Vec3{1, 2, 4}) {
			t.Fatalf("pixel %d = %v", i, px)
		}
	}
}

func TestSample(t *testing.T) {
	b := NewBitmap(2, 2)
	b.Row(0)[0] = mathutil.Vec3{0, 0, 0}
	b.Row(0)[1] = mathutil.Vec3{1, 0, 0}
	b.Row(1)[0] = mathutil.Vec3{0, 1, 0}
	b.Row(1)[1] = mathutil.Vec3{1, 1, 0}

	if got := b.Sample(0, 0); got != (mathutil.Vec3{}) {
		t.Fatalf("Sample(0, 0) = %v", got)
	}
	if got := b.Sample(0.5, 0.5); !got.NearEqual(mathutil.Vec3{0.5, 0.5, 0}, 1e-6) {
		t.Fatalf("Sample(0.5, 0.5) = %v", got)
	}
	if got, want := b.Sample(-0.75, 1.25), b.Sample(0.25, 0.25); !got.NearEqual(want, 1e-6) {
		t.Fatalf("wrapped sample = %v, want %v", got, want)
	}
	if got := NewBitmap(0, 0).Sample(0.3, 0.3); got != (mathutil.Vec3{}) {
		t.Fatalf("empty sample = %v", got)
	}
}
