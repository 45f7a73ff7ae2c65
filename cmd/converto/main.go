package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vscaperrotta/converto/pkg/config"
	"github.com/vscaperrotta/converto/pkg/convert"
	"github.com/vscaperrotta/converto/pkg/ui"
	"github.com/vscaperrotta/converto/pkg/watcher"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Path to converto.yaml (default: ~/.config/converto/converto.yaml)")
	noWatch := flag.Bool("no-watch", false, "Disable live config reloading")
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Println("converto version 0.1.0")
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if fixed := cfg.Normalize(); len(fixed) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: ignoring invalid config values for %s\n", strings.Join(fixed, ", "))
	}

	// One-shot mode for scripting: converto px-rem 32
	if flag.NArg() > 0 {
		if err := runOnce(flag.Args(), cfg.Ratios); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "converto needs a terminal; use 'converto <mode> <value>' for scripted conversions.")
		os.Exit(1)
	}

	// Initial Model
	m := ui.NewModel(cfg.Mode, cfg.Ratios)

	// Run Program
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Live config reload. Failure to watch is not fatal; the session just
	// will not pick up file edits.
	if cfg.Watch && !*noWatch && path != "" {
		w, werr := watcher.NewFileWatcher(path, func() {
			reloaded, lerr := config.Load(path)
			if lerr != nil {
				return
			}
			reloaded.Normalize()
			p.Send(ui.RatiosReloadedMsg{Ratios: reloaded.Ratios})
		})
		if werr == nil {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running converto: %v\n", err)
		os.Exit(1)
	}
}

func runOnce(args []string, ratios convert.Ratios) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: converto <mode> <value>")
	}

	mode, err := convert.ParseMode(args[0])
	if err != nil {
		return err
	}

	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", args[1])
	}

	fmt.Printf("%.3f\n", convert.Direct(mode, value, ratios))
	return nil
}

func usage() {
	fmt.Println("Usage: converto [options] [<mode> <value>]")
	fmt.Println("\nA terminal CSS unit converter (px, rem, em, %, base unit).")
	fmt.Println("Run without arguments for the interactive UI, or pass a mode")
	fmt.Println("and a value for a one-shot conversion:")
	fmt.Println("\n  converto px-rem 32")
	fmt.Println("\nModes:")
	for _, m := range convert.AllModes {
		fmt.Printf("  %-8s %s\n", m, m.DisplayName())
	}
	fmt.Println("\nOptions:")
	flag.PrintDefaults()
}
