package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tchkit/tch"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	bigEndian bool
	useMmap   bool
)

var rootCmd = &cobra.Command{
	Use:   "tchctl",
	Short: "Inspect Tokyo Cabinet hash database files",
	Long: `tchctl is a read-only tool for inspecting Tokyo Cabinet hash database
(.tch) files. It answers point lookups, enumerates records, walks bucket
search trees, and reports structural statistics. It never modifies a file.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&bigEndian, "big-endian", false, "Decode multi-byte fields as big-endian (violates the format specification)")
	rootCmd.PersistentFlags().BoolVar(&useMmap, "mmap", false, "Memory-map the file instead of streaming reads")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB opens the database honoring the global flags.
func openDB(path string) (*tch.DB, error) {
	opts := tch.OpenOptions{}
	if bigEndian {
		opts.ByteOrder = binary.BigEndian
	}
	printVerbose("Opening database: %s\n", path)
	if useMmap {
		return tch.OpenMapped(path, opts)
	}
	return tch.OpenFile(path, opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
