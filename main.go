// nexus-tui - A terminal client for the NexusAI chat backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/nexusai/nexus-tui/internal/cli"
	"github.com/nexusai/nexus-tui/internal/config"
	"github.com/nexusai/nexus-tui/internal/nexus"
	"github.com/nexusai/nexus-tui/internal/session"
	"github.com/nexusai/nexus-tui/internal/store"
	"github.com/nexusai/nexus-tui/internal/ui/chat"
	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		plainFlag   = flag.Bool("plain", false, "run the line-based REPL instead of the full-screen interface")
		versionFlag = flag.Bool("version", false, "print version information and exit")
		backendFlag = flag.String("backend-url", "", "override the backend URL from config")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("nexus-tui %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// Load configuration: file, then environment, then CLI flags on top.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config, using defaults: %v\n", err)
		cfg = config.Default()
	}
	if *backendFlag != "" {
		cfg.Backend.URL = *backendFlag
	}
	if *plainFlag {
		cfg.UI.Plain = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	// Hot-reload the config file while running. Best effort; the client keeps
	// its startup settings if the watcher cannot start.
	if watcher, err := config.NewWatcher(nil); err == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	client := nexus.NewClientWithConfig(&nexus.ClientConfig{
		BaseURL:           cfg.Backend.URL,
		Timeout:           time.Duration(cfg.Backend.TimeoutSecs) * time.Second,
		MaxRequestsPerMin: cfg.Backend.MaxRequestsPerMin,
	})

	ctrl := session.NewController(store.New(), client)

	// The full-screen interface needs a real terminal on both ends.
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	if cfg.UI.Plain || !interactive {
		runREPL(ctrl, client, cfg)
		return
	}

	runTUI(ctrl, client, cfg)
}

// runTUI starts the full-screen Bubble Tea interface.
func runTUI(ctrl *session.Controller, client *nexus.Client, cfg *config.Config) {
	theme := styles.NewTheme()

	m := chat.New(ctrl, client, cfg, theme)
	m.SetVersion(Version)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Session mutations can land from any goroutine; wake the UI so it
	// re-reads the controller snapshot.
	ctrl.SetNotify(func() {
		p.Send(chat.StateChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running nexus-tui: %v\n", err)
		os.Exit(1)
	}
}

// runREPL starts the plain line-based interface.
func runREPL(ctrl *session.Controller, client *nexus.Client, cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repl := cli.NewREPL(ctrl, client, cfg)
	if err := repl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
