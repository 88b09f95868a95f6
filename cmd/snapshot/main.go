package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nokir/AssetScreenShotter/internal/capture"
	"github.com/nokir/AssetScreenShotter/internal/config"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/snapshot"
	"github.com/nokir/AssetScreenShotter/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to settings JSON file")
	saveConfig := flag.String("save-config", "", "Write resolved settings (incl. angle map) to this path after the run")
	targetNames := flag.String("targets", "", "Comma-separated object names to capture (default: all non-light roots)")
	texDirs := flag.String("textures", "", "Comma-separated texture directories")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	baseName := flag.String("name", "", "Image base name (default: scene file name)")
	mode := flag.String("mode", "", "Angle mode: normal, diagonal, both")
	width := flag.Int("width", 0, "Image width (default: 1024)")
	height := flag.Int("height", 0, "Image height (default: 1024)")
	zoom := flag.Float64("zoom", 0, "Zoom factor (default: 1.0)")
	format := flag.String("format", "", "Image format: png or webp (default: png)")
	workers := flag.Int("workers", 0, "Worker goroutines across scene files (default: NumCPU)")
	open := flag.Bool("open", false, "Open the output folder when done")

	flag.Parse()

	scenes := flag.Args()
	if len(scenes) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: snapshot [flags] scene.json [scene2.json ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var cfg config.Settings
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		BaseName:  *baseName,
		Format:    *format,
		AngleMode: *mode,
		Width:     *width,
		Height:    *height,
		Zoom:      *zoom,
		Workers:   *workers,
	})
	if *open {
		cfg.OpenFolder = true
	}

	store := cfg.Enablement()

	var resolver texture.Resolver
	if *texDirs != "" {
		idx := texture.BuildIndex(splitList(*texDirs)...)
		resolver = texture.NewCache(idx)
		fmt.Printf("Textures: %d indexed\n", idx.Len())
	}

	fmt.Printf("Asset Screenshotter — %s mode, %dx%d\n", cfg.AngleMode, cfg.Width, cfg.Height)
	fmt.Printf("Scenes: %d, Workers: %d\n", len(scenes), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	runCfg := snapshot.RunConfig{
		Textures: resolver,
		Store:    store,
		Targets:  splitList(*targetNames),
		Workers:  cfg.Workers,
		Options: snapshot.Options{
			OutDir:      cfg.OutputDir,
			BaseName:    cfg.BaseName,
			Format:      cfg.Format,
			Mode:        cfg.Mode(),
			Width:       cfg.Width,
			Height:      cfg.Height,
			Supersample: cfg.Supersample,
			Zoom:        cfg.Zoom,
			Offset:      mathutil.Vec3(cfg.Offset),
			Clean:       true,
		},
	}

	// The user supplied an explicit base name: it applies per scene, so
	// disambiguate multi-scene runs by keeping the scene-derived default.
	if len(scenes) > 1 {
		runCfg.Options.BaseName = ""
		if *baseName != "" {
			fmt.Fprintln(os.Stderr, "Note: -name ignored for multi-scene runs")
		}
	}

	sceneResults := snapshot.Run(runCfg, scenes)

	written, failed := 0, 0
	var all []snapshot.Result
	for _, sr := range sceneResults {
		if sr.Err != nil {
			failed++
			if errors.Is(sr.Err, capture.ErrNoSelection) {
				fmt.Fprintf(os.Stderr, "  %s: nothing to capture (no target objects)\n", sr.Path)
			} else {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", sr.Path, sr.Err)
			}
			continue
		}
		for _, r := range sr.Results {
			all = append(all, r)
			if r.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "  %s: %v\n", r.Direction, r.Err)
			} else {
				written++
			}
		}
	}

	if err := snapshot.WriteManifest(cfg.OutputDir, all); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest: %v\n", err)
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs: %d images written, %d failures\n", time.Since(start).Seconds(), written, failed)

	if *saveConfig != "" {
		cfg.RecordEnablement(store)
		if err := cfg.Save(*saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if cfg.OpenFolder && written > 0 {
		if err := snapshot.OpenFolder(cfg.OutputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
