package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/batch"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/config"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/imageio"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Output image (.png, .webp, .tga, .bmp, .jpg)")
	pattern := flag.String("pattern", "", "Pattern: "+strings.Join(config.Patterns, ", "))
	envMap := flag.String("env", "", "Environment image for the envmap pattern")
	cols := flag.Int("cols", 0, "Image width in pixels (default 256)")
	rows := flag.Int("rows", 0, "Image height in pixels (default: same as width)")
	samples := flag.Int("samples", 0, "Samples per pixel (default 8)")
	supersample := flag.Int("supersample", 0, "Render at N× size and box-filter down (default 1)")
	seed := flag.Uint64("seed", 0, "Random seed")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	gamma := flag.Float64("gamma", 0, "Output gamma (default 2.2)")
	exposure := flag.Float64("exposure", 0, "Exposure multiplier (default 1)")
	aces := flag.Bool("aces", false, "Apply ACES filmic tone mapping")
	refIdx := flag.Float64("ior", 0, "Refractive index for the fresnel pattern (default 1.5)")
	tilt := flag.Float64("tilt", 0, "Tilt pattern directions about X, in degrees")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default 90)")

	flag.Parse()

	// Seed and tilt override the config file even when set to zero.
	flags := config.Flags{
		Output:      *output,
		Pattern:     *pattern,
		EnvMap:      *envMap,
		Cols:        *cols,
		Rows:        *rows,
		Samples:     *samples,
		Supersample: *supersample,
		Workers:     *workers,
		Gamma:       float32(*gamma),
		Exposure:    float32(*exposure),
		ACES:        *aces,
		RefIdx:      float32(*refIdx),
		Quality:     *quality,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			flags.Seed = seed
		case "tilt":
			t := float32(*tilt)
			flags.Tilt = &t
		}
	})

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var env *raster.Bitmap
	if cfg.Pattern == "envmap" {
		var err error
		env, err = imageio.Load(cfg.EnvMap, cfg.Gamma)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Environment: %s (%dx%d)\n", cfg.EnvMap, env.Cols(), env.Rows())
	}

	// Supersampling renders a larger bitmap that the exporter box-filters down.
	bm := raster.NewBitmap(cfg.Cols*cfg.Supersample, cfg.Rows*cfg.Supersample)
	c := card{
		cols:   bm.Cols(),
		rows:   bm.Rows(),
		jitter: cfg.Samples > 1,
		tilt:   mathutil.RotX(mathutil.Deg2Rad(cfg.Tilt)),
	}
	shade, err := buildShader(cfg.Pattern, c, cfg.RefIdx, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Test card: %s %dx%d, %d spp, seed %d\n", cfg.Pattern, cfg.Cols, cfg.Rows, cfg.Samples, cfg.Seed)
	fmt.Printf("Workers: %d\n", cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := batch.Run(ctx, batch.Config{
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
		Progress: os.Stdout,
	}, bm, batch.Accumulate(cfg.Samples, shade))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render aborted after %d rows: %v\n", stats.Rows, err)
		os.Exit(1)
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs (%d pixels)\n", stats.Elapsed.Seconds(), stats.Pixels)

	tm := raster.ToneMap{Exposure: cfg.Exposure, Gamma: cfg.Gamma, ACES: cfg.ACES}
	if err := imageio.Save(bm, cfg.Output, imageio.Options{
		ToneMap:     &tm,
		Supersample: cfg.Supersample,
		Quality:     cfg.Quality,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved: %s\n", cfg.Output)

	// Write manifest
	if cfg.Manifest != "" {
		format, _ := imageio.FormatFromPath(cfg.Output)
		m := batch.Manifest{
			File:      filepath.Base(cfg.Output),
			Format:    string(format),
			Pattern:   cfg.Pattern,
			Cols:      cfg.Cols,
			Rows:      cfg.Rows,
			Samples:   cfg.Samples,
			Seed:      cfg.Seed,
			Gamma:     cfg.Gamma,
			Exposure:  cfg.Exposure,
			ACES:      cfg.ACES,
			Workers:   cfg.Workers,
			ElapsedMS: stats.Elapsed.Milliseconds(),
		}
		if err := batch.WriteManifest(cfg.Manifest, m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", cfg.Manifest)
		}
	}
}
