package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"acconsole/internal/app"
	"acconsole/internal/config"

	"github.com/spf13/cobra"
)

var (
	Container *app.Container
	BaseURL   string
)

var RootCmd = &cobra.Command{
	Use:   "acconsole",
	Short: "Operator console for the announcement and compensation plugin",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configDir, err := config.DefaultDir()
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
		Container, err = app.Open(cfg, BaseURL)
		if err != nil {
			log.Fatalf("Error starting console: %v", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if Container != nil {
			Container.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		RunDashboard()
	},
}

func Execute() {
	RootCmd.PersistentFlags().StringVar(&BaseURL, "url", "", "URL of the plugin web panel (overrides config)")

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func requireSession() {
	if Container.Sessions.Current() == nil {
		log.Fatal("Error: not logged in. Run 'acconsole login' first.")
	}
}

func ctx() context.Context {
	return context.Background()
}
