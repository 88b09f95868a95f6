package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/scene"
	"github.com/nokir/AssetScreenShotter/internal/texture"
)

// RunConfig holds shared resources for a multi-scene run.
type RunConfig struct {
	Textures texture.Resolver
	Store    *direction.Enablement
	Options  Options
	Targets  []string // object names to capture; empty = all non-light roots
	Workers  int
}

// SceneResult holds the outcome of capturing one scene file.
type SceneResult struct {
	Path    string
	Results []Result
	Err     error
}

// Run captures all scene files using a worker pool. Directions within one
// scene stay strictly sequential; only independent scene files run in
// parallel. The shared timestamp is taken once so every file of the run
// carries the same token.
func Run(cfg RunConfig, scenePaths []string) []SceneResult {
	total := len(scenePaths)
	results := make([]SceneResult, total)
	var processed atomic.Int64

	start := time.Now()
	now := start

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processScene(cfg, scenePaths[idx], now)
				processed.Add(1)
			}
		}()
	}

	for i := range scenePaths {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg RunConfig, path string, now time.Time) SceneResult {
	sc, err := scene.Load(path, cfg.Textures)
	if err != nil {
		return SceneResult{Path: path, Err: err}
	}

	targets, err := pickTargets(sc, cfg.Targets)
	if err != nil {
		return SceneResult{Path: path, Err: err}
	}

	opts := cfg.Options
	if opts.BaseName == "" {
		opts.BaseName = sceneBaseName(path)
	}

	store := cfg.Store
	if store == nil {
		store = direction.NewEnablement()
	}

	results, err := Capture(sc, targets, store, opts, now)
	return SceneResult{Path: path, Results: results, Err: err}
}

// pickTargets resolves target names against the scene; with no names given
// every visible non-light root is a target.
func pickTargets(sc *scene.Scene, names []string) ([]*scene.Object, error) {
	if len(names) == 0 {
		var out []*scene.Object
		for _, o := range sc.Roots() {
			if !o.Light && o.Visible {
				out = append(out, o)
			}
		}
		return out, nil
	}

	out := make([]*scene.Object, 0, len(names))
	for _, n := range names {
		o := sc.Lookup(n)
		if o == nil {
			return nil, fmt.Errorf("snapshot: no object named %q in scene", n)
		}
		out = append(out, o)
	}
	return out, nil
}

func sceneBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
