package cmd

import (
	"log"

	"acconsole/internal/console"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect compensation claims",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		RootCmd.PersistentPreRun(cmd, args)
		requireSession()
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List claim logs",
	Run: func(cmd *cobra.Command, args []string) {
		list, out := Container.Console.LoadClaimLogs(ctx())
		if !out.OK() {
			log.Fatalf("Error: %s", out.Message())
		}
		printTable("CLAIM LOGS", console.ClaimLogTable(list))
	},
}

func init() {
	logCmd.AddCommand(logListCmd)
	RootCmd.AddCommand(logCmd)
}
