package cmd

import (
	"fmt"
	"log"

	"acconsole/internal/console"

	"github.com/spf13/cobra"
)

var whitelistCmd = &cobra.Command{
	Use:     "whitelist",
	Aliases: []string{"wl"},
	Short:   "Manage the player whitelist",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		RootCmd.PersistentPreRun(cmd, args)
		requireSession()
	},
}

var wlUUID, wlName string
var wlYes bool

var whitelistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show whitelist state and entries",
	Run: func(cmd *cobra.Command, args []string) {
		wl, out := Container.Console.LoadWhitelist(ctx())
		if !out.OK() {
			log.Fatalf("Error: %s", out.Message())
		}
		state := "disabled"
		if wl.Enabled {
			state = "enabled"
		}
		fmt.Printf("Whitelist is %s\n", state)
		printTable("WHITELIST", console.WhitelistTable(wl.Entries))
	},
}

var whitelistEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn the whitelist on",
	Run: func(cmd *cobra.Command, args []string) {
		report(Container.Console.SetWhitelistEnabled(ctx(), true))
	},
}

var whitelistDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn the whitelist off",
	Run: func(cmd *cobra.Command, args []string) {
		report(Container.Console.SetWhitelistEnabled(ctx(), false))
	},
}

var whitelistAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a player",
	Run: func(cmd *cobra.Command, args []string) {
		report(Container.Console.AddWhitelist(ctx(), console.WhitelistForm{UUID: wlUUID, Name: wlName}))
	},
}

var whitelistDeleteCmd = &cobra.Command{
	Use:   "delete [uuid]",
	Short: "Remove a player",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !wlYes && !confirm(console.DeletePrompt(console.ModuleWhitelist)) {
			return
		}
		report(Container.Console.DeleteWhitelist(ctx(), args[0]))
	},
}

func init() {
	whitelistAddCmd.Flags().StringVar(&wlUUID, "uuid", "", "Player UUID")
	whitelistAddCmd.Flags().StringVar(&wlName, "name", "", "Player name")
	whitelistDeleteCmd.Flags().BoolVarP(&wlYes, "yes", "y", false, "Skip confirmation")

	whitelistCmd.AddCommand(whitelistListCmd, whitelistEnableCmd, whitelistDisableCmd, whitelistAddCmd, whitelistDeleteCmd)
	RootCmd.AddCommand(whitelistCmd)
}
