package cmd

import (
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk import jobs, candidates, applications and interviews from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		report, err := svc.BulkImport(args[0])
		if err != nil {
			fail(logger, "importing data", err)
		}

		printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
