package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"ftracker/internal/config"
	"ftracker/internal/service"
	"ftracker/internal/tui"
)

var (
	flagConfigPath string
	flagTUI        bool
	flagInit       bool
	flagSummary    bool
)

func init() {
	flag.StringVar(&flagConfigPath, "config", "", "path to config file (default ~/.ftracker/config.json)")
	flag.BoolVar(&flagTUI, "tui", false, "browse the reports in an interactive viewer")
	flag.BoolVar(&flagInit, "init", false, "write an example config file and exit")
	flag.BoolVar(&flagSummary, "summary", false, "print a session summary after the reports")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	path := flagConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("locating config: %w", err)
		}
	}

	if flagInit {
		err := config.CreateExample(path)
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Printf("Config already exists, leaving it untouched:\n  %s\n", path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		fmt.Printf("Example config written to:\n  %s\n", path)
		return nil
	}

	// Load configuration, falling back to the built-in sample packages
	var cfg *config.Config
	var err error
	if flagConfigPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFrom(flagConfigPath)
	}
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	reports, err := service.NewReportService().BuildReports(cfg.Packages)
	if err != nil {
		return err
	}
	summary := service.Summarize(reports)

	if flagTUI || cfg.Display.Mode == config.ModeTUI {
		app := tui.NewApp(reports, summary, cfg.Display)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	for _, r := range reports {
		fmt.Println(r.Info.Message())
	}
	if flagSummary || cfg.Display.Summary {
		fmt.Println(summary.Message())
	}

	return nil
}
