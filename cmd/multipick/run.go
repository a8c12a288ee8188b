package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"golang.org/x/sync/errgroup"

	"multipick/internal/config"
	"multipick/internal/eventbus"
	"multipick/internal/ui"
	"multipick/internal/watcher"
)

// options holds the command line flags
type options struct {
	configPath     string
	candidatesFile string
	match          string
	watch          bool
	json           bool
	logPath        string
	noMouse        bool
}

// settings is the resolved configuration for one run
type settings struct {
	config         *config.Config
	candidates     []string
	candidatesPath string // "" when the candidates are inline
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return errors.New("multipick needs an interactive terminal")
	}

	if opts.logPath != "" {
		logFile, err := tea.LogToFile(opts.logPath, "multipick")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	s, err := loadSettings(opts, bus)
	if err != nil {
		return err
	}
	if opts.watch && s.candidatesPath == "" {
		return errors.New("--watch needs a candidates file")
	}

	uiModel, err := ui.NewModel(bus, s.config, s.candidates)
	if err != nil {
		return err
	}
	defer uiModel.Close()

	p := tea.NewProgram(uiModel, programOptions(s.config)...)
	uiModel.SetProgram(p)

	// Errors show up in the status line
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	g, gctx := errgroup.WithContext(ctx)
	if opts.watch {
		w, err := watcher.NewWatcher(s.candidatesPath)
		if err != nil {
			return err
		}
		if err := w.Start(gctx); err != nil {
			return err
		}
		defer w.Stop()
		g.Go(func() error {
			watchCandidates(gctx, w, bus, p)
			return nil
		})
	}

	if os.Getenv("MULTIPICK_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	g.Go(func() error {
		// Interrupts end the program like esc does
		go func() {
			<-gctx.Done()
			p.Quit()
		}()
		defer cancel()

		log.Printf("Starting UI with %d candidates", len(s.candidates))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		log.Printf("UI exited normally")
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return printSelection(out, uiModel.Selection(), opts.json)
}

// loadSettings reads the config file and the candidates, applying flag
// overrides
func loadSettings(opts options, bus eventbus.EventBus) (*settings, error) {
	svc := config.NewConfigServiceWithBus(bus, opts.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	baseDir := filepath.Dir(svc.Path())
	if opts.candidatesFile != "" {
		// flag paths are relative to the working directory
		abs, err := filepath.Abs(opts.candidatesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", opts.candidatesFile, err)
		}
		cfg.CandidatesFile = abs
	}
	if opts.match != "" {
		cfg.Match = opts.match
	}
	if opts.noMouse {
		cfg.UISettings.Mouse = false
	}

	candidates, err := config.LoadCandidates(cfg, baseDir)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d candidates", len(candidates))

	return &settings{
		config:         cfg,
		candidates:     candidates,
		candidatesPath: config.ResolveCandidatesFile(cfg, baseDir),
	}, nil
}

func programOptions(cfg *config.Config) []tea.ProgramOption {
	programOpts := []tea.ProgramOption{tea.WithReportFocus()}
	if !cfg.UISettings.AltScreen {
		// the inline renderer does not start at row 0, so mouse
		// coordinates would not match the layout's hit regions
		if cfg.UISettings.Mouse {
			log.Printf("Mouse disabled: it needs alt_screen")
		}
		return programOpts
	}
	programOpts = append(programOpts, tea.WithAltScreen())
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	return programOpts
}

// subscribeLogging writes domain events to the log
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventItemPicked, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemPickedEvent); ok {
			log.Printf("Picked %q (%d selected)", event.Label, len(event.Selection))
		}
	})
	bus.Subscribe(eventbus.EventItemRemoved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemRemovedEvent); ok {
			log.Printf("Removed %q (%d selected)", event.Label, len(event.Selection))
		}
	})
	bus.Subscribe(eventbus.EventCandidatesReloaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CandidatesReloadedEvent); ok {
			log.Printf("Reloaded %d candidates from %s", event.Count, event.Source)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s (match=%s)", event.Path, event.Match)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
}

// sender is the part of tea.Program the watch loop needs
type sender interface {
	Send(msg tea.Msg)
}

// watchCandidates re-reads the candidates file after every change until
// ctx is done
func watchCandidates(ctx context.Context, w *watcher.Watcher, bus eventbus.EventBus, p sender) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.Changed():
			labels, err := config.ReadCandidatesFile(w.Path())
			if err != nil {
				bus.Publish(eventbus.ErrorEvent{Message: "Reload failed", Err: err})
				continue
			}
			p.Send(ui.CandidatesReloadedMsg{Source: w.Path(), Candidates: labels})
		case err := <-w.Errors():
			bus.Publish(eventbus.ErrorEvent{Message: "Watch failed", Err: err})
		}
	}
}

// printSelection writes one label per line, or a JSON array
func printSelection(out io.Writer, selection []string, asJSON bool) error {
	if asJSON {
		if selection == nil {
			selection = []string{}
		}
		return json.NewEncoder(out).Encode(selection)
	}
	for _, label := range selection {
		if _, err := fmt.Fprintln(out, label); err != nil {
			return err
		}
	}
	return nil
}
