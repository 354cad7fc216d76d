package main

import (
	"fmt"
	"time"

	"notes-service/storage"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inspect seed files",
}

var seedCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and validate a seed file without starting the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := storage.LoadSeedFile(args[0], time.Now())
		if err != nil {
			return err
		}

		// Import catches duplicate and out-of-range ids
		store := storage.NewMemoryStore()
		if err := store.Import(notes...); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d notes ok\n", args[0], store.Len())
		return nil
	},
}

func init() {
	seedCmd.AddCommand(seedCheckCmd)
}
