package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tchkit/tch/printer"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <db>",
		Short: "Validate the header and report layout metadata",
		Long: `The info command validates a cabinet file's header and displays its
layout: alignment, offset width, bucket region, free-block pool offset,
and the record region bounds.

Example:
  tchctl info casket.tch
  tchctl info casket.tch --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	h := db.Header()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"database_type":         h.DatabaseType,
			"additional_flags":      h.AdditionalFlags,
			"alignment_power":       h.AlignmentPower,
			"free_block_pool_power": h.FreeBlockPoolPower,
			"options":               h.Options,
			"offset_width":          h.OffsetWidth(),
			"bucket_count":          h.BucketCount,
			"record_count":          h.RecordCount,
			"file_size":             h.FileSize,
			"first_record":          h.FirstRecord,
			"free_pool_offset":      db.FreeBlockPoolOffset(),
		})
	}

	p, err := printer.New(os.Stdout, printer.Options{})
	if err != nil {
		return err
	}
	if err := p.Header(h); err != nil {
		return err
	}
	printInfo("bucket region:     256..%d\n", db.FreeBlockPoolOffset())
	printInfo("free pool offset:  %d\n", db.FreeBlockPoolOffset())
	return nil
}
