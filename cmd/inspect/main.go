package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nokir/AssetScreenShotter/internal/config"
	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to settings JSON file")
	mode := flag.String("mode", "", "Angle mode to list: normal, diagonal, both")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [flags] scene.json")
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
	cfg.Resolve(config.Flags{AngleMode: *mode})

	sc, err := scene.Load(flag.Arg(0), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scene: %s (%d objects)\n\n", flag.Arg(0), len(sc.Objects))
	for _, root := range sc.Roots() {
		printTree(root, 0)
	}

	b := scene.ComputeBounds(sc.Roots())
	fmt.Printf("\nCombined bounds: center (%.3f, %.3f, %.3f), size (%.3f, %.3f, %.3f)\n",
		b.Center[0], b.Center[1], b.Center[2], b.Size[0], b.Size[1], b.Size[2])

	store := cfg.Enablement()
	fmt.Printf("\nDirections (%s):\n", cfg.AngleMode)
	for _, d := range direction.ForMode(cfg.Mode()) {
		state := "enabled"
		if !store.IsEnabled(d.Name) {
			state = "disabled"
		}
		fmt.Printf("  %-18s (%+.0f, %+.0f, %+.0f)  %s\n", d.Name, d.Vector[0], d.Vector[1], d.Vector[2], state)
	}
}

func printTree(o *scene.Object, depth int) {
	indent := strings.Repeat("  ", depth)

	kind := "group"
	switch {
	case o.Light:
		kind = "light"
	case o.Renderable():
		kind = fmt.Sprintf("mesh, %d verts", len(o.Mesh.Verts))
	}
	vis := ""
	if !o.Visible {
		vis = ", hidden"
	}
	fmt.Printf("%s%s (%s%s)\n", indent, o.Name, kind, vis)

	if b, ok := o.OwnBounds(); ok {
		fmt.Printf("%s  bounds: center (%.3f, %.3f, %.3f), size (%.3f, %.3f, %.3f)\n",
			indent, b.Center[0], b.Center[1], b.Center[2], b.Size[0], b.Size[1], b.Size[2])
	}

	for _, c := range o.Children {
		printTree(c, depth+1)
	}
}
