package batch

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/raster"
)

func coords(col, row int, _ mathutil.Source) mathutil.Vec3 {
	return mathutil.Vec3{float32(col), float32(row), 1}
}

func noisy(_, _ int, src mathutil.Source) mathutil.Vec3 {
	return mathutil.RandomInUnitSphere(src)
}

func TestRunFillsEveryPixel(t *testing.T) {
	b := raster.NewBitmap(7, 5)
	stats, err := Run(context.Background(), Config{Workers: 3}, b, coords)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Rows != 5 || stats.Pixels != 35 {
		t.Fatalf("stats = %+v", stats)
	}
	for r := 0; r < b.Rows(); r++ {
		for c, px := range b.Row(r) {
			if px != (mathutil.Vec3{float32(c), float32(r), 1}) {
				t.Fatalf("(%d, %d) = %v", c, r, px)
			}
		}
	}
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	one := raster.NewBitmap(16, 16)
	many := raster.NewBitmap(16, 16)
	if _, err := Run(context.Background(), Config{Workers: 1, Seed: 9}, one, noisy); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(context.Background(), Config{Workers: 8, Seed: 9}, many, noisy); err != nil {
		t.Fatal(err)
	}
	for i := range one.Pix() {
		if one.Pix()[i] != many.Pix()[i] {
			t.Fatalf("pixel %d differs: %v vs %v", i, one.Pix()[i], many.Pix()[i])
		}
	}

	other := raster.NewBitmap(16, 16)
	if _, err := Run(context.Background(), Config{Workers: 4, Seed: 10}, other, noisy); err != nil {
		t.Fatal(err)
	}
	if other.Pix()[0] == one.Pix()[0] && other.Pix()[1] == one.Pix()[1] {
		t.Fatal("different seeds produced identical output")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := raster.NewBitmap(4, 1000)
	stats, err := Run(ctx, Config{Workers: 2}, b, coords)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if stats.Rows >= 1000 {
		t.Fatalf("canceled run processed all %d rows", stats.Rows)
	}
}

func TestRunProgress(t *testing.T) {
	var out bytes.Buffer
	slow := func(col, row int, src mathutil.Source) mathutil.Vec3 {
		if col == 0 {
			time.Sleep(2 * time.Millisecond)
		}
		return coords(col, row, src)
	}
	cfg := Config{Workers: 1, Progress: &out, Interval: time.Millisecond}
	if _, err := Run(context.Background(), cfg, raster.NewBitmap(1, 50), slow); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Bytes(), []byte("/50]")) {
		t.Fatalf("no progress lines in %q", out.String())
	}
}

func TestAccumulate(t *testing.T) {
	calls := 0
	shade := func(_, _ int, _ mathutil.Source) mathutil.Vec3 {
		calls++
		return mathutil.Splat(float32(calls))
	}
	got := Accumulate(4, shade)(0, 0, nil)
	if calls != 4 || got != mathutil.Splat(2.5) {
		t.Fatalf("calls = %d, got %v; want 4, (2.5, 2.5, 2.5)", calls, got)
	}
}

func TestManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	want := Manifest{File: "out.png", Format: "png", Pattern: "normals", Cols: 4, Rows: 3, Samples: 8, Seed: 1, Gamma: 2.2}
	if err := WriteManifest(path, want); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if got != want {
		t.Fatalf("manifest = %+v, want %+v", got, want)
	}
}
