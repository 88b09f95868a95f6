package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nokir/AssetScreenShotter/internal/capture"
	"github.com/nokir/AssetScreenShotter/internal/config"
	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/frame"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/raster"
	"github.com/nokir/AssetScreenShotter/internal/scene"
	"github.com/nokir/AssetScreenShotter/internal/snapshot"
	"github.com/nokir/AssetScreenShotter/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to settings JSON file")
	texDirs := flag.String("textures", "", "Comma-separated texture directories")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: preview [flags] scene.json")
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
	cfg.Resolve(config.Flags{})

	var resolver texture.Resolver
	if *texDirs != "" {
		resolver = texture.NewCache(texture.BuildIndex(*texDirs))
	}

	sc, err := scene.Load(flag.Arg(0), resolver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var targets []*scene.Object
	for _, o := range sc.Roots() {
		if !o.Light && o.Visible {
			targets = append(targets, o)
		}
	}
	if len(targets) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", capture.ErrNoSelection)
		os.Exit(1)
	}

	m := newModel(sc, targets, cfg, *configFile)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type model struct {
	sc      *scene.Scene
	targets []*scene.Object
	bounds  scene.Bounds
	store   *direction.Enablement
	prev    *capture.Previewer
	viewer  *softViewer
	cfg     config.Settings
	cfgPath string

	mode     direction.Mode
	lc       raster.LightConfig
	current  string // name of the direction on screen, "" when idle
	status   string
	selected int // cursor into the mode's direction list

	termW, termH int
	frameANSI    string
}

func newModel(sc *scene.Scene, targets []*scene.Object, cfg config.Settings, cfgPath string) *model {
	bounds := scene.ComputeBounds(targets)
	mode := cfg.Mode()
	aspect := float64(cfg.Width) / float64(cfg.Height)

	// Home view: a three-quarter diagonal over the whole selection.
	home := frame.Solve(bounds, mathutil.Vec3{1, 1, 1}, aspect, cfg.Zoom, mathutil.Vec3(cfg.Offset), direction.ModeDiagonal)

	return &model{
		sc:      sc,
		targets: targets,
		bounds:  bounds,
		store:   cfg.Enablement(),
		prev:    capture.NewPreviewer(),
		viewer:  newSoftViewer(aspect, home),
		cfg:     cfg,
		cfgPath: cfgPath,
		mode:    mode,
		lc:      raster.DefaultLightConfig(),
		status:  "n: next angle  r: reset  m: mode  j/k: select  t: toggle  w: write  q: quit",
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.renderFrame()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "n", " ", "enter", "tab":
			d, err := m.prev.Step(m.viewer, m.bounds, m.mode, m.store, m.cfg.Zoom, mathutil.Vec3(m.cfg.Offset))
			if err != nil {
				m.status = errorLine(err)
			} else {
				m.current = d.Name
				m.status = "showing " + d.Name
				m.renderFrame()
			}

		case "r":
			m.prev.Reset(m.viewer)
			m.current = ""
			m.status = "view restored"
			m.renderFrame()

		case "m":
			m.mode = nextMode(m.mode)
			m.cfg.AngleMode = m.mode.String()
			// Mode switch clears only the preview index; the saved view
			// survives so reset still works.
			m.prev.ModeChanged()
			if m.selected >= len(direction.ForMode(m.mode)) {
				m.selected = 0
			}
			m.status = "mode: " + m.mode.String()

		case "j", "down":
			dirs := direction.ForMode(m.mode)
			m.selected = (m.selected + 1) % len(dirs)

		case "k", "up":
			dirs := direction.ForMode(m.mode)
			m.selected = (m.selected + len(dirs) - 1) % len(dirs)

		case "t":
			dirs := direction.ForMode(m.mode)
			name := dirs[m.selected].Name
			m.store.SetEnabled(name, !m.store.IsEnabled(name))
			m.persistAngles()

		case "w":
			m.writeCurrent()
		}
	}
	return m, nil
}

func (m *model) View() string {
	title := fmt.Sprintf("Asset Screenshotter preview — mode %s", m.mode)
	if m.current != "" {
		title += " — " + m.current
	}

	angles := ""
	for i, d := range direction.ForMode(m.mode) {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		box := "[x]"
		if !m.store.IsEnabled(d.Name) {
			box = "[ ]"
		}
		angles += fmt.Sprintf("%s%s %s\n", marker, box, d.Name)
	}

	return title + "\n" + m.frameANSI + angles + "\n" + m.status + "\n"
}

// renderFrame rasterizes the viewer's current camera into the terminal
// image cache. Each half-block cell is one pixel wide and two tall.
func (m *model) renderFrame() {
	dirs := len(direction.ForMode(m.mode))
	reserved := dirs + 4 // title, angle list, status, padding
	w := m.termW
	h := (m.termH - reserved) * 2
	if w < 16 || h < 16 {
		m.frameANSI = ""
		return
	}

	img := raster.Render(m.sc.Roots(), m.viewer.camera(), w, h, 1, &m.lc)
	m.frameANSI = renderANSI(img)
}

// writeCurrent captures just the direction on screen at export resolution.
func (m *model) writeCurrent() {
	if m.current == "" {
		m.status = "nothing on screen yet — step first"
		return
	}

	only := direction.NewEnablement()
	only.InitializeDefaults(direction.Names())
	for _, n := range direction.Names() {
		only.SetEnabled(n, n == m.current)
	}

	results, err := snapshot.Capture(m.sc, m.targets, only, snapshot.Options{
		OutDir:      m.cfg.OutputDir,
		BaseName:    m.cfg.BaseName,
		Format:      m.cfg.Format,
		Mode:        m.mode,
		Width:       m.cfg.Width,
		Height:      m.cfg.Height,
		Supersample: m.cfg.Supersample,
		Zoom:        m.cfg.Zoom,
		Offset:      mathutil.Vec3(m.cfg.Offset),
		Clean:       true,
	}, time.Now())
	if err != nil {
		m.status = errorLine(err)
		return
	}
	for _, r := range results {
		if r.Err != nil {
			m.status = errorLine(r.Err)
			return
		}
		m.status = "wrote " + r.File
	}
}

// persistAngles saves the enablement map back to the settings file, when
// one was given.
func (m *model) persistAngles() {
	if m.cfgPath == "" {
		return
	}
	m.cfg.RecordEnablement(m.store)
	if err := m.cfg.Save(m.cfgPath); err != nil {
		m.status = errorLine(err)
	}
}

func nextMode(m direction.Mode) direction.Mode {
	switch m {
	case direction.ModeNormal:
		return direction.ModeDiagonal
	case direction.ModeDiagonal:
		return direction.ModeNormalAndDiagonal
	}
	return direction.ModeNormal
}

func errorLine(err error) string {
	switch {
	case errors.Is(err, capture.ErrNoAngleEnabled):
		return "no angle enabled — toggle one with t"
	case errors.Is(err, capture.ErrNoSceneView):
		return "no viewer available"
	default:
		return err.Error()
	}
}
