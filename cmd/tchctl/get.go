package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tchkit/tch"
	"github.com/joshuapare/tchkit/tch/printer"
)

var (
	getHex      bool
	getEncoding string
	getTrace    bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getHex, "hex", false, "Output the value as hex")
	cmd.Flags().StringVar(&getEncoding, "encoding", "", "Display encoding (utf-8, euc-jp, shift_jis, windows-1252)")
	cmd.Flags().BoolVar(&getTrace, "trace", false, "Show the hash detail and every record visited during the lookup")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <db> <key>",
		Short: "Look up a value by key",
		Long: `The get command performs a point lookup and prints the stored value.

Example:
  tchctl get casket.tch mykey
  tchctl get casket.tch mykey --hex
  tchctl get casket.tch mykey --trace`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	key := []byte(args[1])

	if getTrace {
		return runGetTrace(db, key)
	}

	value, err := db.Get(key)
	if err != nil {
		if errors.Is(err, tch.ErrNotFound) {
			return fmt.Errorf("key %q not found", args[1])
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":       args[1],
			"size":      len(value),
			"value_hex": hex.EncodeToString(value),
		})
	}

	p, err := printer.New(os.Stdout, printer.Options{Hex: getHex, Encoding: getEncoding})
	if err != nil {
		return err
	}
	printInfo("%s\n", p.Display(value))
	return nil
}

func runGetTrace(db *tch.DB, key []byte) error {
	kh, found, visited, err := db.GetDetail(key)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if jsonOut {
		path := make([]map[string]interface{}, 0, len(visited))
		for _, r := range visited {
			path = append(path, map[string]interface{}{
				"offset": r.Pos,
				"hash":   r.HashValue,
				"key":    string(r.Key),
			})
		}
		return printJSON(map[string]interface{}{
			"bucket":  kh.Bucket,
			"hash":    kh.Hash,
			"found":   found,
			"visited": path,
		})
	}

	printInfo("bucket:  %d\n", kh.Bucket)
	printInfo("hash:    %d\n", kh.Hash)
	printInfo("found:   %t\n", found)
	for i, r := range visited {
		printInfo("  step %d: offset=%d hash=%d key=%q\n", i, r.Pos, r.HashValue, r.Key)
	}
	return nil
}
