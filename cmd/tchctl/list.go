package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tchkit/tch"
	"github.com/joshuapare/tchkit/tch/printer"
)

var (
	listValues   bool
	listHex      bool
	listEncoding string
	listFree     bool
	listLimit    int
)

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listValues, "values", false, "Include values in the output")
	cmd.Flags().BoolVar(&listHex, "hex", false, "Render keys and values as hex")
	cmd.Flags().StringVar(&listEncoding, "encoding", "", "Display encoding (utf-8, euc-jp, shift_jis, windows-1252)")
	cmd.Flags().BoolVar(&listFree, "free", false, "Include free blocks in the output")
	cmd.Flags().IntVar(&listLimit, "limit", 0, "Stop after N entries (0 = no limit)")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <db>",
		Short: "Enumerate record-region entries in file order",
		Long: `The list command scans the record region from the first record to the
end of the file and prints each entry.

Example:
  tchctl list casket.tch
  tchctl list casket.tch --values --encoding euc-jp
  tchctl list casket.tch --free --limit 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := printer.New(os.Stdout, printer.Options{
		Hex:        listHex,
		Encoding:   listEncoding,
		ShowValues: listValues,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		var entries []tch.RecordSpace
		it := db.Entries(listValues)
		for it.Next() {
			switch e := it.Entry().(type) {
			case *tch.Record:
				entries = append(entries, e)
			case *tch.FreeBlock:
				if !listFree {
					continue
				}
				entries = append(entries, e)
			}
			if listLimit > 0 && len(entries) == listLimit {
				break
			}
		}
		if err := it.Err(); err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		return p.EntriesJSON(entries)
	}

	n := 0
	it := db.Entries(listValues)
	for it.Next() {
		switch e := it.Entry().(type) {
		case *tch.Record:
			if err := p.Record(e); err != nil {
				return err
			}
		case *tch.FreeBlock:
			if !listFree {
				continue
			}
			if err := p.FreeBlock(e); err != nil {
				return err
			}
		}
		n++
		if listLimit > 0 && n == listLimit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	printVerbose("%d entries\n", n)
	return nil
}
