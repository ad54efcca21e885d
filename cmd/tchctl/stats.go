package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/tchkit/tch/stats"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <db>",
		Short: "Show structural statistics",
		Long: `The stats command scans the whole record region and the bucket array
and reports structural statistics: record and free-block counts, byte
totals, bucket occupancy, and free-block pool size.

Example:
  tchctl stats casket.tch
  tchctl stats casket.tch --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := stats.Collect(db)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(s)
	}

	printInfo("file size:         %d\n", s.FileSize)
	printInfo("alignment:         2^%d\n", s.AlignmentPower)
	printInfo("offset width:      %d\n", s.OffsetWidth)
	printInfo("records:           %d (header claims %d)\n", s.Records, s.HeaderRecords)
	printInfo("free blocks:       %d (%d bytes)\n", s.FreeBlocks, s.FreeBytes)
	printInfo("key bytes:         %d\n", s.KeyBytes)
	printInfo("value bytes:       %d\n", s.ValueBytes)
	printInfo("padding bytes:     %d\n", s.PaddingBytes)
	printInfo("buckets:           %d total, %d used, %d empty\n", s.Buckets, s.BucketsUsed, s.BucketsEmpty)
	printInfo("pool entries:      %d\n", s.PoolEntries)
	printInfo("max key size:      %d\n", s.MaxKeySize)
	printInfo("max value size:    %d\n", s.MaxValueSize)
	return nil
}
