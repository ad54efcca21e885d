package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tchkit/tch/printer"
)

var (
	btreeValues   bool
	btreeEncoding string
)

func init() {
	cmd := newBtreeCmd()
	cmd.Flags().BoolVar(&btreeValues, "values", false, "Include values in the output")
	cmd.Flags().StringVar(&btreeEncoding, "encoding", "", "Display encoding (utf-8, euc-jp, shift_jis, windows-1252)")
	rootCmd.AddCommand(cmd)
}

func newBtreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "btree <db> <bucket>",
		Short: "Dump one bucket's search tree",
		Long: `The btree command traverses a single bucket's binary search tree and
prints its records in traversal order (right subtree, node, left subtree).

Example:
  tchctl btree casket.tch 42
  tchctl btree casket.tch 42 --values`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBtree(args)
		},
	}
	return cmd
}

func runBtree(args []string) error {
	bucket, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bucket number %q: %w", args[1], err)
	}

	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.DumpBucket(bucket)
	if err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}

	p, err := printer.New(os.Stdout, printer.Options{
		Encoding:   btreeEncoding,
		ShowValues: btreeValues,
	})
	if err != nil {
		return err
	}
	if jsonOut {
		return p.RecordsJSON(records)
	}
	for _, r := range records {
		if err := p.Record(r); err != nil {
			return err
		}
	}
	printVerbose("%d records in bucket %d\n", len(records), bucket)
	return nil
}
