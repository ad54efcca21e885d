package main

import (
	"github.com/spf13/cobra"
)

var bucketsUsed bool

func init() {
	cmd := newBucketsCmd()
	cmd.Flags().BoolVar(&bucketsUsed, "used", false, "List non-empty buckets with their root offsets")
	rootCmd.AddCommand(cmd)
}

func newBucketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buckets <db>",
		Short: "Summarize the bucket array",
		Long: `The buckets command reads the whole bucket array and reports how many
buckets are used. With --used it lists every non-empty bucket together
with the absolute offset of its tree root.

Example:
  tchctl buckets casket.tch
  tchctl buckets casket.tch --used`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuckets(args)
		},
	}
	return cmd
}

func runBuckets(args []string) error {
	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	buckets, err := db.Buckets()
	if err != nil {
		return err
	}
	used := buckets.Used()

	if jsonOut {
		out := map[string]interface{}{
			"total": len(buckets),
			"used":  used,
			"empty": len(buckets) - used,
		}
		if bucketsUsed {
			align := db.Header().AlignmentPower
			roots := map[int]int64{}
			for i, off := range buckets {
				if !off.IsEmpty() {
					roots[i] = off.Absolute(align)
				}
			}
			out["roots"] = roots
		}
		return printJSON(out)
	}

	printInfo("buckets: %d total, %d used, %d empty\n", len(buckets), used, len(buckets)-used)
	if bucketsUsed {
		align := db.Header().AlignmentPower
		for i, off := range buckets {
			if !off.IsEmpty() {
				printInfo("%10d  root at %d\n", i, off.Absolute(align))
			}
		}
	}
	return nil
}
