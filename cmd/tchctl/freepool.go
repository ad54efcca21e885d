package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tchkit/tch/printer"
)

func init() {
	rootCmd.AddCommand(newFreepoolCmd())
}

func newFreepoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freepool <db>",
		Short: "List free-block pool entries",
		Long: `The freepool command decodes the free-block pool that follows the
bucket array and prints its entries verbatim, as stored on disk.

Example:
  tchctl freepool casket.tch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFreepool(args)
		},
	}
	return cmd
}

func runFreepool(args []string) error {
	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	pool, err := db.FreeBlockPool()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(pool)
	}
	p, err := printer.New(os.Stdout, printer.Options{})
	if err != nil {
		return err
	}
	return p.Pool(pool)
}
