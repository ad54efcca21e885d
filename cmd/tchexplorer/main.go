package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/tchkit/cmd/tchexplorer/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("tchexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	dbPath := filteredArgs[0]
	logger.Info("starting tchexplorer", "path", dbPath, "debug", debugMode)

	if _, err := os.Stat(dbPath); err != nil {
		logger.Error("database file not found", "path", dbPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: database file not found: %s\n", dbPath)
		os.Exit(1)
	}

	m, err := NewModel(dbPath)
	if err != nil {
		logger.Error("open failed", "path", dbPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: tchexplorer [--debug] <database.tch>")
}

func printHelp() {
	fmt.Println(`tchexplorer — interactive Tokyo Cabinet hash database browser

Usage:
  tchexplorer [flags] <database.tch>

Flags:
  -d, --debug     write a debug log under ~/.tchexplorer/logs
  -h, --help      show this help
  -v, --version   show version information

Keys:
  up/down         move selection
  enter           view the selected record's value
  x               toggle hex rendering
  c               copy value to clipboard
  q               quit`)
}
