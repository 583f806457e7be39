package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/config"
	"tuikit/internal/demo"
	"tuikit/internal/pty"
	"tuikit/internal/shell"
	"tuikit/internal/ui"
	"tuikit/internal/widget"
)

func main() {
	builtinREPL := flag.Bool("builtin-repl", false,
		"use the built-in calculator REPL instead of running commands through sh")
	configPath := flag.String("config", "",
		"path to the config file (default $SAMPLETUI_CONFIG or ~/.config/sampletui/config.json)")
	flag.Parse()

	if os.Getenv("SAMPLETUI_DEBUG") != "" {
		f, err := tea.LogToFile("sampletui.log", "sampletui")
		if err != nil {
			fmt.Fprintf(os.Stderr, "sampletui: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	path := *configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sampletui: %v\n", err)
		os.Exit(1)
	}
	ui.ApplyTheme(cfg.Theme.Accent, cfg.Theme.Border)

	var proc widget.Processor
	if *builtinREPL {
		proc = shell.NewEvaluator()
	} else {
		proc = shell.NewPTYProcessor(&pty.CreackPTY{})
	}

	zone.NewGlobal()
	app := demo.New(cfg, proc)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
