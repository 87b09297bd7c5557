// Package tui is the terminal front end: a model catalog and the scientific
// and programmer calculators, built on bubbletea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Starties/calculators/internal/config"
	"github.com/Starties/calculators/internal/logger"
	"github.com/Starties/calculators/internal/scientific"
)

// View identifies the screen the app shows
type View int

const (
	ViewCatalog View = iota
	ViewScientific
	ViewProgrammer
)

func (v View) String() string {
	switch v {
	case ViewScientific:
		return "scientific"
	case ViewProgrammer:
		return "programmer"
	default:
		return "catalog"
	}
}

// ViewFor maps a catalog model id to its view
func ViewFor(id string) (View, bool) {
	switch id {
	case "scientific":
		return ViewScientific, true
	case "programmer":
		return ViewProgrammer, true
	}
	return ViewCatalog, false
}

// ConfigChangedMsg carries a reloaded configuration into the program
type ConfigChangedMsg struct {
	Config *config.Config
}

// App is the root model switching between the catalog and the calculators.
// Each calculator keeps its state while another view is shown.
type App struct {
	cfg        *config.Config
	view       View
	menu       *CatalogMenu
	scientific *ScientificModel
	programmer *ProgrammerModel
	width      int
	height     int
}

// NewApp creates the root model showing the given view first
func NewApp(cfg *config.Config, start View) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	calc := scientific.New(nil, cfg.FormatOptions())
	return &App{
		cfg:        cfg,
		view:       start,
		menu:       NewCatalogMenu(DefaultMenuConfig()),
		scientific: NewScientificModel(calc, cfg.Angle()),
		programmer: NewProgrammerModel(cfg.Base()),
	}
}

// Current returns the active view
func (a *App) Current() View {
	return a.view
}

// Scientific returns the scientific calculator model
func (a *App) Scientific() *ScientificModel {
	return a.scientific
}

// Programmer returns the programmer calculator model
func (a *App) Programmer() *ProgrammerModel {
	return a.programmer
}

// Menu returns the catalog menu
func (a *App) Menu() *CatalogMenu {
	return a.menu
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.menu.SetSize(msg.Width, msg.Height)
		a.scientific, _ = a.scientific.Update(msg)
		a.programmer, _ = a.programmer.Update(msg)
		return a, nil

	case ConfigChangedMsg:
		a.applyConfig(msg.Config)
		return a, nil

	case ModelSelectedMsg:
		if v, ok := ViewFor(msg.Model.ID); ok {
			logger.Debug("tui: open %s", v)
			a.view = v
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, globalKeys.Quit) {
			return a, tea.Quit
		}
		if a.view != ViewCatalog && key.Matches(msg, globalKeys.Back) {
			a.view = ViewCatalog
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case ViewScientific:
		a.scientific, cmd = a.scientific.Update(msg)
	case ViewProgrammer:
		a.programmer, cmd = a.programmer.Update(msg)
	default:
		a.menu, cmd = a.menu.Update(msg)
	}
	return a, cmd
}

// applyConfig takes over display settings from a reloaded config. The
// running calculators keep their state; angle mode and base defaults only
// apply to new sessions.
func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.cfg = cfg
	a.scientific.SetCalculator(scientific.New(nil, cfg.FormatOptions()))
	logger.Info("tui: configuration applied")
}

// View implements tea.Model
func (a *App) View() string {
	switch a.view {
	case ViewScientific:
		return a.scientific.View()
	case ViewProgrammer:
		return a.programmer.View()
	default:
		return a.menu.View()
	}
}

// Options configure Run
type Options struct {
	Config     *config.Config
	ConfigPath string // watched for changes when set
	Start      View
	AltScreen  bool
}

// Run starts the interactive program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	app := NewApp(opts.Config, opts.Start)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(app, progOpts...)

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, func(cfg *config.Config) {
			program.Send(ConfigChangedMsg{Config: cfg})
		})
		if err != nil {
			logger.Warn("tui: config watch disabled: %v", err)
		} else {
			defer func() {
				if err := w.Close(); err != nil {
					logger.Warn("tui: close config watcher: %v", err)
				}
			}()
		}
	}

	logger.Info("tui: starting in %s view", opts.Start)
	if _, err := program.Run(); err != nil {
		logger.Global().Error("tui: program stopped: %v", err)
		return err
	}
	return nil
}
